package domain

import "time"

const day = 24 * time.Hour

// SeedProjects returns the built-in catalog used when nothing is stored yet.
// Timestamps are relative to now so the seed always looks recent.
func SeedProjects(now time.Time) []Project {
	return []Project{
		{
			ID:         "p1",
			Name:       "Modern Portfolio Template",
			Language:   "React + Tailwind",
			Type:       TypeCode,
			Content:    "const Portfolio = () => {\n  return <div>My Amazing Work</div>\n};",
			Notes:      "A clean and responsive portfolio template for developers.",
			PreviewURL: "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=800&q=80",
			Likes:      124,
			Downloads:  450,
			AuthorID:   "admin-2",
			CreatedAt:  now.Add(-day).UnixMilli(),
		},
		{
			ID:         "p2",
			Name:       "E-Commerce Backend API",
			Language:   "Node.js",
			Type:       TypeCode,
			Content:    "app.get(\"/products\", (req, res) => {\n  res.json(products);\n});",
			Notes:      "Ready-to-use REST API for online stores.",
			PreviewURL: "https://images.unsplash.com/photo-1557821552-17105176677c?w=800&q=80",
			Likes:      89,
			Downloads:  210,
			AuthorID:   "admin-1",
			CreatedAt:  now.Add(-2 * day).UnixMilli(),
		},
	}
}
