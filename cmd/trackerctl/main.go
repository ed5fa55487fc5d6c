package main

import (
	"bufio"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"summer-success/tracker/config"
	"summer-success/tracker/internal/dto"
	"summer-success/tracker/internal/repository"
	"summer-success/tracker/internal/service"
	"summer-success/tracker/pkg/database"
	"summer-success/tracker/pkg/jwt"
	applogger "summer-success/tracker/pkg/logger"
)

var cfgFile string

// app the pieces every database-backed command needs
type app struct {
	cfg    *config.Config
	db     *gorm.DB
	svc    *service.Service
	logger *zap.Logger
}

func openApp() (*app, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	logger, _, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		return nil, err
	}
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		return nil, err
	}
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwt.NewManager(&cfg.Auth), service.Deps{}, logger)
	return &app{cfg: cfg, db: db, svc: svc, logger: logger}, nil
}

func (a *app) close() {
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = a.logger.Sync()
}

func main() {
	rootCmd := &cobra.Command{
		Use:           "trackerctl",
		Short:         "Summer Success Tracker administration",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(childCmd())
	rootCmd.AddCommand(progressCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(hashPasswordCmd())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// ── migrate ──

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back PostgreSQL migrations",
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply every pending migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPostgres(func(a *app, sqlDB *sql.DB) error {
				return database.RunMigrations(sqlDB, a.logger)
			})
		},
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back the last migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps <= 0 {
				return fmt.Errorf("--steps must be positive")
			}
			return withPostgres(func(a *app, sqlDB *sql.DB) error {
				return database.RollbackMigrations(sqlDB, steps, a.logger)
			})
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")

	cmd.AddCommand(up, down)
	return cmd
}

// withPostgres runs fn against the configured PostgreSQL database. SQLite
// schemas are auto-migrated on open and have nothing to migrate.
func withPostgres(fn func(a *app, sqlDB *sql.DB) error) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	if a.cfg.Database.Driver != database.DriverPostgres {
		return fmt.Errorf("migrations apply to postgres only, db.driver is %q", a.cfg.Database.Driver)
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return fn(a, sqlDB)
}

// ── child ──

func childCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "child",
		Short: "Manage tracked children",
	}

	add := &cobra.Command{
		Use:   "add NAME...",
		Short: "Add one or more children",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.close()

			for _, name := range args {
				child, err := a.svc.Child.Create(cmd.Context(), &dto.CreateChildRequest{Name: name})
				if err != nil {
					return fmt.Errorf("add %q: %w", name, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", child.ID, child.Name)
			}
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List children",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.close()

			children, err := a.svc.Child.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, c := range children {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", c.ID, c.Name)
			}
			return nil
		},
	}

	cmd.AddCommand(add, list)
	return cmd
}

// ── progress ──

func progressCmd() *cobra.Command {
	var (
		date string
		view string
	)

	cmd := &cobra.Command{
		Use:   "progress [CHILD_ID]",
		Short: "Print progress for every child, or a weekly/monthly summary for one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.close()

			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if view != "" {
				if len(args) == 0 {
					return fmt.Errorf("--view requires a CHILD_ID")
				}
				sum, err := a.svc.Stats.Period(ctx, args[0], view, date)
				if err != nil {
					return err
				}
				return printJSON(out, sum)
			}

			board, err := a.svc.Progress.Dashboard(ctx, date)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Progress for %s", board.Date)
			if board.Vacation {
				fmt.Fprint(out, " (vacation day)")
			}
			fmt.Fprintln(out)
			for _, p := range board.Children {
				if len(args) == 1 && p.ChildID != args[0] {
					continue
				}
				fmt.Fprintf(out, "  %-16s academic %3d/120  skill %3d/60  chores %d/2  behaviors %d  minecraft %2d min\n",
					p.ChildName, p.AcademicTime, p.SkillTime, p.ChoresCompleted, p.BehaviorCount, p.MinecraftTime)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "day to report (YYYY-MM-DD), defaults to today")
	cmd.Flags().StringVar(&view, "view", "", "weekly or monthly summary for CHILD_ID")
	return cmd
}

// ── export ──

func exportCmd() *cobra.Command {
	var (
		output string
		req    dto.ExportRequest
	)

	cmd := &cobra.Command{
		Use:   "export FORMAT",
		Short: "Export activities and behaviors as csv, json, xlsx or pdf",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.close()

			file, err := a.svc.Export.Export(cmd.Context(), args[0], &req)
			if err != nil {
				return err
			}
			if output == "" {
				output = file.Filename
			}
			if err := os.WriteFile(output, file.Content.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output path, defaults to the generated file name")
	cmd.Flags().StringVar(&req.ChildID, "child", "", "only export this child")
	cmd.Flags().StringVar(&req.Start, "start", "", "first day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&req.End, "end", "", "last day (YYYY-MM-DD)")
	return cmd
}

// ── hash-password ──

func hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password",
		Short: "Read a password from stdin and print its bcrypt hash for auth.parent_password_hash",
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && err != io.EOF {
				return err
			}
			password := strings.TrimRight(line, "\r\n")
			if password == "" {
				return fmt.Errorf("empty password")
			}
			hash, err := service.HashPassword(password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

