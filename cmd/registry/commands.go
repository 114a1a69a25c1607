package main

import (
	"encoding/json"
	"fmt"
	"os"

	"go-context-registry/internal/api"
	"go-context-registry/internal/api/handler"
	"go-context-registry/internal/config"
	"go-context-registry/internal/loader"
	"go-context-registry/internal/model"
	"go-context-registry/internal/registry"
	"go-context-registry/internal/store"
	"go-context-registry/internal/validator"
	"go-context-registry/pkg/router"

	"github.com/spf13/cobra"
)

// openRegistry loads the config and restores a manager from the SQLite
// store. Callers must close the returned DB.
func openRegistry(configPath string) (*config.Config, *registry.Manager, *store.DB, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}
	mgr, db, err := store.OpenManager(cfg.Store.Path)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, mgr, db, nil
}

func policyFor(cfg *config.Config) validator.Policy {
	return validator.Policy{
		Strict:       cfg.Validation.Strict,
		AllowedHooks: cfg.Validation.AllowedHooks,
	}
}

func serveCmd(configPath *string) *cobra.Command {
	var seed bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the registry HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, mgr, db, err := openRegistry(*configPath)
			if err != nil {
				return err
			}
			defer db.Close()

			if seed && mgr.ActiveVersion() == "" {
				if err := registry.SeedManager(mgr); err != nil {
					return fmt.Errorf("seed built-in schemas: %w", err)
				}
				fmt.Printf("🌱 Seeded built-in schemas, active version: %s\n", mgr.ActiveVersion())
			}

			r := router.New()
			api.RegisterRoutes(r, handler.New(mgr, policyFor(cfg)))
			r.Start(cfg.Server.Addr)
			return nil
		},
	}

	cmd.Flags().BoolVar(&seed, "seed", false, "register the built-in schema generations on an empty registry")
	return cmd
}

func registerCmd(configPath *string) *cobra.Command {
	var changelog string

	cmd := &cobra.Command{
		Use:   "register <version> <body.json>",
		Short: "Register a new schema version",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, mgr, db, err := openRegistry(*configPath)
			if err != nil {
				return err
			}
			defer db.Close()

			body, err := loader.LoadBody(args[1])
			if err != nil {
				return err
			}
			sv, err := mgr.RegisterVersion(args[0], body, changelog)
			if err != nil {
				return err
			}
			fmt.Printf("✅ Registered schema %s (active)\n", sv.Version)
			return nil
		},
	}

	cmd.Flags().StringVar(&changelog, "changelog", "", "changelog text for the version log")
	return cmd
}

func rollbackCmd(configPath *string) *cobra.Command {
	var previous bool

	cmd := &cobra.Command{
		Use:   "rollback [version]",
		Short: "Move the active pointer to a prior version",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, mgr, db, err := openRegistry(*configPath)
			if err != nil {
				return err
			}
			defer db.Close()

			var entry model.VersionLogEntry
			switch {
			case previous && len(args) == 0:
				entry, err = mgr.RollbackToPrevious()
			case !previous && len(args) == 1:
				entry, err = mgr.RollbackTo(args[0])
			default:
				return fmt.Errorf("provide either a version or --previous")
			}
			if err != nil {
				return err
			}
			fmt.Printf("↩️  Active pointer moved to %s\n", entry.Version)
			return nil
		},
	}

	cmd.Flags().BoolVar(&previous, "previous", false, "roll back to the previous registered version")
	return cmd
}

func validateCmd(configPath *string) *cobra.Command {
	var version string

	cmd := &cobra.Command{
		Use:   "validate <document.json>",
		Short: "Validate a context document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, mgr, db, err := openRegistry(*configPath)
			if err != nil {
				return err
			}
			defer db.Close()

			doc, err := loader.LoadDocument(args[0])
			if err != nil {
				return err
			}

			var sv model.SchemaVersion
			if version != "" {
				sv, err = mgr.Resolve(version)
			} else {
				sv, err = mgr.ResolveCurrent()
			}
			if err != nil {
				return err
			}

			result := validator.Validate(doc, sv, policyFor(cfg))
			if result.Valid {
				fmt.Printf("✅ Document is valid against schema %s\n", result.Version)
				return nil
			}

			fmt.Printf("❌ Document has %d violation(s) against schema %s:\n", len(result.Violations), result.Version)
			for _, v := range result.Violations {
				fmt.Printf("  - %s: %s\n", v.Path, v.Reason)
			}
			os.Exit(1)
			return nil
		},
	}

	cmd.Flags().StringVar(&version, "version", "", "schema version to validate against (default: active)")
	return cmd
}

func historyCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show the version log, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, mgr, db, err := openRegistry(*configPath)
			if err != nil {
				return err
			}
			defer db.Close()

			active := mgr.ActiveVersion()
			for _, e := range mgr.History() {
				marker := " "
				if e.Version == active && e.Kind == model.EventRegister {
					marker = "*"
				}
				fmt.Printf("%s %-9s %-12s %s  %s\n",
					marker, e.Kind, e.Version, e.Timestamp.Format("2006-01-02 15:04:05"), e.Changelog)
			}
			return nil
		},
	}
}

func currentCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show the active schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, mgr, db, err := openRegistry(*configPath)
			if err != nil {
				return err
			}
			defer db.Close()

			sv, err := mgr.ResolveCurrent()
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(sv, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
}

func upgradeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "upgrade <from> <to>",
		Short: "List required fields to add when upgrading between versions",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, mgr, db, err := openRegistry(*configPath)
			if err != nil {
				return err
			}
			defer db.Close()

			from, err := mgr.Resolve(args[0])
			if err != nil {
				return err
			}
			to, err := mgr.Resolve(args[1])
			if err != nil {
				return err
			}

			additions := validator.SuggestUpgrade(from, to)
			if len(additions) == 0 {
				fmt.Printf("🆙 No new required fields when upgrading from %s to %s.\n", from.Version, to.Version)
				return nil
			}
			fmt.Printf("🆙 To upgrade from %s to %s, add:\n", from.Version, to.Version)
			for _, field := range additions {
				fmt.Printf("  🔸 %s\n", field)
			}
			return nil
		},
	}
}

func summaryCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the required/optional field matrix across versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, mgr, db, err := openRegistry(*configPath)
			if err != nil {
				return err
			}
			defer db.Close()

			var versions []model.SchemaVersion
			for _, e := range mgr.Registrations() {
				sv, err := mgr.Resolve(e.Version)
				if err != nil {
					return err
				}
				versions = append(versions, sv)
			}
			fmt.Print(validator.RuleSummary(versions))
			return nil
		},
	}
}
