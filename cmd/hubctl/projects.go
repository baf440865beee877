package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/sourcecodehub/hub-backend/internal/bootstrap"
	"github.com/sourcecodehub/hub-backend/internal/projects/domain"
	"github.com/sourcecodehub/hub-backend/internal/projects/repository"
	"github.com/sourcecodehub/hub-backend/internal/projects/service"
	"github.com/sourcecodehub/hub-backend/internal/storage"
)

func newProjectsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Browse and act on the project catalog",
	}

	var search string
	list := &cobra.Command{
		Use:   "list",
		Short: "List projects, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withCatalog(cmd.Context(), func(svc *service.ProjectService) error {
				return printProjects(cmd.OutOrStdout(), svc.List(search))
			})
		},
	}
	list.Flags().StringVarP(&search, "search", "s", "", "Filter by name or language (case-insensitive)")

	like := &cobra.Command{
		Use:   "like <id>",
		Short: "Add one like to a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withCatalog(cmd.Context(), func(svc *service.ProjectService) error {
				p, err := svc.Like(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s now has %d likes\n", p.Name, p.Likes)
				return nil
			})
		},
	}

	var dir string
	export := &cobra.Command{
		Use:   "export <id>",
		Short: "Download a project: write the code to a file or print the file link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withCatalog(cmd.Context(), func(svc *service.ProjectService) error {
				_, art, err := svc.Download(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return writeArtifact(cmd.OutOrStdout(), dir, art)
			})
		},
	}
	export.Flags().StringVarP(&dir, "dir", "d", ".", "Directory to write code files into")

	cmd.AddCommand(list, like, export)
	return cmd
}

// withStore opens the configured store for the duration of one command.
func (c *cli) withStore(ctx context.Context, fn func(storage.KV) error) error {
	kv, err := bootstrap.OpenStore(ctx, c.cfg, bootstrap.StoreOptions{}, c.logger)
	if err != nil {
		return err
	}
	defer kv.Close()
	return fn(kv)
}

// withCatalog also loads the catalog, seeding it on first use like the server does.
func (c *cli) withCatalog(ctx context.Context, fn func(*service.ProjectService) error) error {
	return c.withStore(ctx, func(kv storage.KV) error {
		svc := service.NewProjectService(repository.NewProjectStore(kv, c.logger), c.logger)
		if err := svc.Init(ctx); err != nil {
			return err
		}
		return fn(svc)
	})
}

func printProjects(w io.Writer, items []domain.Project) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tLANGUAGE\tTYPE\tLIKES\tDOWNLOADS\tCREATED")
	for _, p := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%d\t%s\n",
			p.ID, p.Name, p.Language, p.Type, p.Likes, p.Downloads,
			time.UnixMilli(p.CreatedAt).Format("2006-01-02"))
	}
	return tw.Flush()
}

var fileNameSeparators = strings.NewReplacer("/", "_", "\\", "_")

func writeArtifact(w io.Writer, dir string, art domain.Artifact) error {
	if art.Kind == domain.ArtifactLink {
		fmt.Fprintln(w, art.URL)
		return nil
	}

	path := filepath.Join(dir, fileNameSeparators.Replace(art.FileName))
	if err := os.WriteFile(path, []byte(art.Body), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintln(w, path)
	return nil
}
