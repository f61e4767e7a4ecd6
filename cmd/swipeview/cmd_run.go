package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BrandonKowalski/swipeview/pkg/swipeview"
	"github.com/BrandonKowalski/swipeview/pkg/swipeview/pager"
	"github.com/spf13/cobra"
)

var demoColors = []uint32{0x2E5EAA, 0x5B8E7D, 0xBC4B51, 0xF4A259, 0x8CB369}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [key[=title]...]",
		Short: "Open the pager in a window",
		Long: `Open the pager with one page per argument. Each argument is a route key,
optionally followed by =title. Without arguments five demo pages are shown.

Pages are dragged with touch or the mouse and stepped with the d-pad or
shoulder buttons. A selects the current page and B goes back, then exits.`,
		Example: `  swipeview run
  swipeview run home=Home library=Library settings=Settings --index 1
  swipeview run --images ./wallpapers`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			index, _ := cmd.Flags().GetInt("index")
			imageDir, _ := cmd.Flags().GetString("images")
			hideIndicator, _ := cmd.Flags().GetBool("hide-indicator")
			cannoli, _ := cmd.Flags().GetBool("cannoli")

			pages, err := buildPages(args, imageDir)
			if err != nil {
				return err
			}

			if err := swipeview.Init(swipeview.Options{Config: cfg, IsCannoli: cannoli}); err != nil {
				return err
			}
			defer swipeview.Close()

			logger := swipeview.GetLogger()
			result, err := swipeview.SwipeView(pages, swipeview.SwipeViewSettings{
				InitialIndex:  index,
				HideIndicator: hideIndicator,
				OnPageChange: func(i int, page swipeview.Page) {
					logger.Info("Page committed", "index", i, "key", page.Route.Key)
				},
			})
			if errors.Is(err, swipeview.ErrCancelled) {
				fmt.Fprintln(cmd.ErrOrStderr(), "cancelled")
				return nil
			}
			if err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
					"index":  result.Index,
					"key":    result.Page.Route.Key,
					"action": result.Action.String(),
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (index %d)\n", result.Action, result.Page.Route.Key, result.Index)
			return nil
		},
	}

	cmd.Flags().Int("index", 0, "Initial page index")
	cmd.Flags().String("images", "", "Directory of .png/.jpg files, one page per image")
	cmd.Flags().Bool("hide-indicator", false, "Hide the page dots")
	cmd.Flags().Bool("cannoli", false, "Use Cannoli CFW colours")

	return cmd
}

func buildPages(args []string, imageDir string) ([]swipeview.Page, error) {
	if imageDir != "" {
		entries, err := os.ReadDir(imageDir)
		if err != nil {
			return nil, fmt.Errorf("reading image directory: %w", err)
		}
		var pages []swipeview.Page
		for _, entry := range entries {
			ext := strings.ToLower(filepath.Ext(entry.Name()))
			if entry.IsDir() || (ext != ".png" && ext != ".jpg" && ext != ".jpeg") {
				continue
			}
			key := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
			pages = append(pages, swipeview.Page{
				Route:     pager.Route{Key: key, Title: key},
				ImagePath: filepath.Join(imageDir, entry.Name()),
			})
		}
		if len(pages) == 0 {
			return nil, fmt.Errorf("no images found in %s", imageDir)
		}
		return pages, nil
	}

	if len(args) == 0 {
		args = []string{"one=One", "two=Two", "three=Three", "four=Four", "five=Five"}
	}

	pages := make([]swipeview.Page, len(args))
	routes := make([]pager.Route, len(args))
	for i, arg := range args {
		key, title, _ := strings.Cut(arg, "=")
		routes[i] = pager.Route{Key: key, Title: title}
		pages[i] = swipeview.Page{
			Route:    routes[i],
			ColorHex: demoColors[i%len(demoColors)],
		}
	}
	if err := pager.ValidateRoutes(routes); err != nil {
		return nil, err
	}
	return pages, nil
}
