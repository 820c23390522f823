package commands

import (
	"fmt"

	"github.com/jmylchreest/keylab/internal/errors"
	"github.com/jmylchreest/keylab/pkg/catalog"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// NewLibraryCommand creates the library command
func NewLibraryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "library",
		Short: "Inspect the book catalog",
	}

	cmd.AddCommand(
		newLibraryDemoCommand(),
		newLibraryListCommand(),
	)

	return cmd
}

// loadLibrary decodes the configured seed catalog
func loadLibrary(cmd *cobra.Command) (*catalog.Library, error) {
	app, ok := appFromCmd(cmd)
	if !ok {
		return nil, fmt.Errorf("command is not initialised")
	}
	lib, err := catalog.LoadLibrary(app.Config.Books())
	if err != nil {
		return nil, errors.LogErrorAndReturn(app.Logger, errors.WrapErrorf(err, "failed to load library"), "library load failed")
	}
	app.Logger.Debug("library loaded", "books", len(lib.Books))
	return lib, nil
}

// newLibraryDemoCommand prints the next id of an empty and of the seeded
// library, then the index of the requested book id
func newLibraryDemoCommand() *cobra.Command {
	var id int
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the catalog demo",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(catalog.NewLibrary().NextBookID())

			lib, err := loadLibrary(cmd)
			if err != nil {
				return err
			}
			fmt.Println(lib.NextBookID())

			index, err := lib.IndexByBookID(id)
			if err != nil {
				return err
			}
			fmt.Println(index)
			return nil
		},
	}
	cmd.Flags().IntVar(&id, "id", 1, "Book id to look up")
	return cmd
}

// newLibraryListCommand creates the library list command
func newLibraryListCommand() *cobra.Command {
	var (
		parseable bool
		output    string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the books in the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}
			lib, err := loadLibrary(cmd)
			if err != nil {
				return err
			}

			if output == outputYAML {
				return printYAML(bookRecords(lib))
			}

			if len(lib.Books) == 0 {
				if parseable {
					return nil
				}
				pterm.Info.Println("No books in the catalog")
				return nil
			}

			if parseable {
				for i, b := range lib.Books {
					fmt.Println(BookParseable(i, b))
				}
				return nil
			}

			return pterm.DefaultTable.WithHasHeader().WithData(BookTableData(lib)).Render()
		},
	}
	cmd.Flags().BoolVarP(&parseable, "parseable", "p", false, "Output in parseable format (key=value)")
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "Output format (table, yaml)")
	return cmd
}
