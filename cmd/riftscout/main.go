// Command riftscout is the Riftscout command line client.
//
// Usage:
//
//	riftscout scout "Hide on bush#KR1"
//	riftscout scout Faker KR1 --json
//	riftscout scout "Name#Tag" --webhook
//	riftscout version
//	riftscout history --limit 20
//	riftscout purge --older-than 720h
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/albapepper/riftscout/internal/audit"
	"github.com/albapepper/riftscout/internal/config"
	"github.com/albapepper/riftscout/internal/db"
	"github.com/albapepper/riftscout/internal/ddragon"
	"github.com/albapepper/riftscout/internal/discord"
	"github.com/albapepper/riftscout/internal/riot"
	"github.com/albapepper/riftscout/internal/scout"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:           "riftscout",
		Short:         "Scout League of Legends players by Riot ID",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(scoutCmd())
	root.AddCommand(versionCmd())
	root.AddCommand(historyCmd())
	root.AddCommand(purgeCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// scout command
// --------------------------------------------------------------------------

func scoutCmd() *cobra.Command {
	var (
		asJSON  bool
		webhook bool
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "scout <Name#Tag | Name Tag>",
		Short: "Scout a player's live game or latest match",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			gameName, tagLine, err := riotIDFromArgs(args)
			if err != nil {
				return fmt.Errorf("%s", scout.UserMessage(err))
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if timeout <= 0 {
				timeout = cfg.ScoutTimeout
			}

			var hook *discord.WebhookClient
			if webhook {
				if cfg.DiscordWebhookURL == "" {
					return fmt.Errorf("--webhook requires DISCORD_WEBHOOK_URL")
				}
				hook = discord.NewWebhookClient(cfg.DiscordWebhookURL)
			}

			client := riot.NewClient(cfg.RiotAPIKey,
				riot.WithRegionalURL(cfg.RiotRegionalURL),
				riot.WithPlatformURL(cfg.RiotPlatformURL),
				riot.WithRateLimit(cfg.RiotRequestsPerSecond, cfg.RiotBurst),
				riot.WithLogger(logger),
			)
			assets := ddragon.NewStore(cfg.DDragonURL, cfg.ContentVersionFallback)
			if _, err := assets.Refresh(ctx); err != nil {
				logger.Warn("Content version refresh failed, using fallback", "error", err)
			}

			s := scout.New(client, assets, scout.Options{
				MatchCount:             cfg.ScoutMatchCount,
				MaxConcurrentOpponents: cfg.ScoutMaxConcurrentOpponents,
				Logger:                 logger,
			})

			scoutCtx, scoutCancel := context.WithTimeout(ctx, timeout)
			defer scoutCancel()
			report, scoutErr := s.Scout(scoutCtx, gameName, tagLine)

			if hook != nil {
				var sendErr error
				if scoutErr == nil {
					sendErr = hook.SendReport(ctx, report)
				} else {
					sendErr = hook.Send(ctx, discord.NewErrorPayload(scout.UserMessage(scoutErr)))
				}
				if sendErr != nil {
					return fmt.Errorf("send webhook: %w", sendErr)
				}
			}

			if scoutErr != nil {
				return fmt.Errorf("%s", scout.UserMessage(scoutErr))
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			printReport(out, report)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	cmd.Flags().BoolVar(&webhook, "webhook", false, "Also post the result to DISCORD_WEBHOOK_URL")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Overall scout timeout (default SCOUT_TIMEOUT)")
	return cmd
}

// riotIDFromArgs accepts either one "Name#Tag" argument or a name and a tag.
func riotIDFromArgs(args []string) (string, string, error) {
	if len(args) == 2 {
		return args[0], scout.CleanTag(args[1]), nil
	}
	return scout.ParseRiotID(args[0])
}

func printReport(w io.Writer, report *scout.Report) {
	switch report.Kind {
	case scout.KindLive:
		live := report.Live
		fmt.Fprintf(w, "Details for %s (%s)\n", report.Player.RiotID(), live.SelfRank)
		fmt.Fprintln(w, "LIVE MATCH FOUND")
		for _, o := range live.Opponents {
			fmt.Fprintf(w, "  %-32s WR: %3.0f%% (%dW - %dL)\n", o.DisplayName, o.WinRate()*100, o.Wins, o.Losses)
		}
	case scout.KindRecent:
		r := report.Recent
		if report.Notice != "" {
			fmt.Fprintln(w, report.Notice)
		}
		result := "DEFEAT"
		if r.Won {
			result = "VICTORY"
		}
		fmt.Fprintf(w, "%s: %s in %s\n", report.Player.RiotID(), result, r.Mode)
		fmt.Fprintf(w, "  Champion: %s\n", r.ChampionName)
		fmt.Fprintf(w, "  KDA:      %s\n", r.KDA)
		fmt.Fprintf(w, "  Damage:   %d dealt / %d taken\n", r.DamageDealt, r.DamageTaken)
		fmt.Fprintf(w, "  CS:       %d\n", r.CS)
		fmt.Fprintf(w, "  Gold:     %d\n", r.Gold)
		fmt.Fprintf(w, "  Vision:   %d\n", r.Vision)
		fmt.Fprintf(w, "  Played:   %s\n", r.MatchDate.Format("01/02/2006"))
	}
}

// --------------------------------------------------------------------------
// version command
// --------------------------------------------------------------------------

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current Data Dragon content version",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOptional()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			store := ddragon.NewStore(cfg.DDragonURL, cfg.ContentVersionFallback)
			version, err := store.Refresh(ctx)
			if err != nil {
				return fmt.Errorf("refresh version: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), version)
			return nil
		},
	}
}

// --------------------------------------------------------------------------
// audit commands
// --------------------------------------------------------------------------

func historyCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent scout requests from the audit log",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAudit(func(ctx context.Context, store *audit.Store) error {
				entries, err := store.Recent(ctx, limit)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, e := range entries {
					fmt.Fprintf(out, "%s  %-28s %-10s %6dms\n",
						e.CreatedAt.Local().Format(time.DateTime),
						e.GameName+"#"+e.TagLine, e.Outcome, e.DurationMs)
				}
				if len(entries) == 0 {
					fmt.Fprintln(out, "No scout requests recorded.")
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum entries to list (1-500)")
	return cmd
}

func purgeCmd() *cobra.Command {
	var olderThan time.Duration
	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete audit entries older than the retention window",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAudit(func(ctx context.Context, store *audit.Store) error {
				if olderThan <= 0 {
					return fmt.Errorf("--older-than must be positive")
				}
				n, err := store.Purge(ctx, olderThan)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d %s\n", n, plural(n, "entry", "entries"))
				return nil
			})
		},
	}
	cmd.Flags().DurationVar(&olderThan, "older-than", 30*24*time.Hour, "Retention window")
	return cmd
}

func plural(n int64, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// runAudit handles config loading, DB connection, and context cancellation.
func runAudit(fn func(ctx context.Context, store *audit.Store) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.LoadOptional()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if !cfg.AuditEnabled() {
		return fmt.Errorf("DATABASE_URL is required")
	}

	pool, err := db.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	return fn(ctx, audit.New(pool.Pool, logger))
}
