package cli

import (
	"context"

	"grimoire/browser/internal/config"
	"grimoire/browser/internal/container"

	"github.com/spf13/cobra"
)

func newCataloguesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "catalogues",
		Short: "List catalogues",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withContainer(cmd, func(ctx context.Context, app *container.Container) error {
				catalogues, err := app.Client.ListCatalogues(ctx)
				if err != nil {
					return err
				}
				renderCatalogues(cmd.OutOrStdout(), catalogues)
				return nil
			})
		},
	}
}

func newUnitsCommand() *cobra.Command {
	var (
		faction, search string
		limit           int
	)

	cmd := &cobra.Command{
		Use:   "units",
		Short: "List units",
		Long: `List units, optionally filtered by faction and by a case-insensitive
substring of the unit name.`,
		Example: `  grimoire units --search intercessor
  grimoire units --faction Necrons`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withContainer(cmd, func(ctx context.Context, app *container.Container) error {
				units, err := app.Service.Units(ctx, faction, search)
				if err != nil {
					return err
				}
				renderUnits(cmd.OutOrStdout(), units)
				return nil
			}, func(cfg *config.Config) {
				if limit > 0 {
					cfg.Units.Limit = limit
				}
			})
		},
	}

	cmd.Flags().StringVar(&faction, "faction", "", "Only units of this faction")
	cmd.Flags().StringVar(&search, "search", "", "Only units whose name contains this text")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of units to fetch (default from units.limit)")

	return cmd
}

func newUnitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unit <id>",
		Short: "Show one unit with its profile, weapons and costs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withContainer(cmd, func(ctx context.Context, app *container.Container) error {
				unit, err := app.Service.UnitDetail(ctx, args[0])
				if err != nil {
					return err
				}
				renderUnit(cmd.OutOrStdout(), unit)
				return nil
			})
		},
	}
}

func newFactionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "factions <category>",
		Short:     "List the factions of a category with their unit counts",
		Example:   `  grimoire factions xenos`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"xenos", "imperium", "chaos"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withContainer(cmd, func(ctx context.Context, app *container.Container) error {
				entries, err := app.Service.CategoryFactions(ctx, args[0])
				if err != nil {
					return err
				}
				renderFactions(cmd.OutOrStdout(), entries)
				return nil
			})
		},
	}
}

func newSearchCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search units, weapons and abilities",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withContainer(cmd, func(ctx context.Context, app *container.Container) error {
				results, err := app.Service.Search(ctx, args[0], app.Config.Search.Limit)
				if err != nil {
					return err
				}
				renderSearch(cmd.OutOrStdout(), results)
				return nil
			}, func(cfg *config.Config) {
				if limit > 0 {
					cfg.Search.Limit = limit
				}
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of results (default from search.limit)")

	return cmd
}

func newGameSystemCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "game-system",
		Short: "Show the game system the API serves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withContainer(cmd, func(ctx context.Context, app *container.Container) error {
				system, err := app.Client.GetGameSystem(ctx)
				if err != nil {
					return err
				}
				renderGameSystem(cmd.OutOrStdout(), system)
				return nil
			})
		},
	}
}
