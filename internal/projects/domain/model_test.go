package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProjectMatches(t *testing.T) {
	p := Project{Name: "E-Commerce Backend API", Language: "Node.js"}

	assert.True(t, p.Matches(""))
	assert.True(t, p.Matches("backend"))
	assert.True(t, p.Matches("NODE"))
	assert.True(t, p.Matches("commerce b"))
	assert.False(t, p.Matches("python"))
	assert.False(t, p.Matches("PYTHON"))
}

func TestNewProjectInputValidate(t *testing.T) {
	valid := NewProjectInput{Name: "Demo", Language: "Python", Type: TypeCode, Content: "print(1)"}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	cases := map[string]func(*NewProjectInput){
		"missing name":     func(in *NewProjectInput) { in.Name = "" },
		"missing language": func(in *NewProjectInput) { in.Language = "" },
		"bad type":         func(in *NewProjectInput) { in.Type = "ZIP" },
		"blank content":    func(in *NewProjectInput) { in.Content = "   " },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := valid
			mutate(&in)
			err := in.Validate()
			assert.True(t, errors.Is(err, ErrInvalidProject), "got %v", err)
		})
	}
}

func TestNewProjectInputNormalize(t *testing.T) {
	in := NewProjectInput{Name: "  Demo ", Language: " Go", Type: " file "}
	in.Normalize()
	assert.Equal(t, "Demo", in.Name)
	assert.Equal(t, "Go", in.Language)
	assert.Equal(t, TypeFile, in.Type)

	empty := NewProjectInput{}
	empty.Normalize()
	assert.Equal(t, TypeCode, empty.Type)
}

func TestArtifactFor(t *testing.T) {
	code := Project{Name: "Demo", Language: "Python", Type: TypeCode, Content: "print(1)\n"}
	a := ArtifactFor(code)
	assert.Equal(t, ArtifactText, a.Kind)
	assert.Equal(t, "Demo-python.txt", a.FileName)
	assert.Equal(t, "print(1)\n", a.Body)

	file := Project{Name: "Kit", Language: "Zip", Type: TypeFile, Content: "https://files.test/kit.zip"}
	a = ArtifactFor(file)
	assert.Equal(t, ArtifactLink, a.Kind)
	assert.Equal(t, "https://files.test/kit.zip", a.URL)
	assert.Empty(t, a.FileName)
}

func TestSeedProjects(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	seed := SeedProjects(now)

	if assert.Len(t, seed, 2) {
		assert.Equal(t, "p1", seed[0].ID)
		assert.Equal(t, "admin-2", seed[0].AuthorID)
		assert.Equal(t, now.Add(-24*time.Hour).UnixMilli(), seed[0].CreatedAt)
		assert.Equal(t, "p2", seed[1].ID)
		assert.Equal(t, "admin-1", seed[1].AuthorID)
		assert.Greater(t, seed[0].CreatedAt, seed[1].CreatedAt)
	}
}
