package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/manifoldco/promptui"
	"github.com/mark3labs/mcp-go/server"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/honekiti/portfolio/internal/chat"
	"github.com/honekiti/portfolio/internal/config"
	"github.com/honekiti/portfolio/internal/mcpserver"
	"github.com/honekiti/portfolio/internal/profile"
	"github.com/honekiti/portfolio/internal/responder"
	"github.com/honekiti/portfolio/internal/store"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio site",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		gin.SetMode(cfg.Server.Mode)
		if cfg.UsingDefaultAdmin() {
			log.Println("WARNING: Using default admin credentials. Set ADMIN_USERNAME and ADMIN_PASSWORD.")
		}

		st, err := store.Open(cfg.Storage.DataDir)
		if err != nil {
			return fmt.Errorf("opening storage: %w", err)
		}
		defer st.Close()

		srv := newServer(cfg, st)
		handler, err := srv.Router()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		httpSrv := &http.Server{
			Addr:        cfg.Addr(),
			Handler:     handler,
			BaseContext: func(net.Listener) context.Context { return ctx },
		}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			log.Printf("Listening on %s", cfg.Addr())
			if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()
			return httpSrv.Shutdown(shutdownCtx)
		})
		if cfg.Storage.TrackVisitors {
			g.Go(func() error {
				runCleanup(gctx, srv, cfg.Storage.CleanupInterval)
				return nil
			})
		}
		return g.Wait()
	},
}

// runCleanup prunes old visitor rows at start and then on every tick.
func runCleanup(ctx context.Context, srv *Server, every time.Duration) {
	srv.cleanupOldVisitorData(ctx)
	if every <= 0 {
		return
	}
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			srv.cleanupOldVisitorData(ctx)
		}
	}
}

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Answer one question and exit",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r := responder.New(profile.Default())
		fmt.Fprintln(cmd.OutOrStdout(), r.Respond(strings.Join(args, " ")))
		return nil
	},
}

const (
	chatOwnQuestion = "自分で質問を入力する"
	chatQuit        = "終了"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the FAQ assistant in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		c := chat.NewController(responder.New(profile.Default()),
			chat.WithDelayRange(cfg.Chat.MinDelay, cfg.Chat.MaxDelay))
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, ChatWelcome)
		items := append(append([]string{}, chat.QuickQuestions...), chatOwnQuestion, chatQuit)
		for {
			sel := promptui.Select{Label: "質問を選んでください", Items: items, Size: len(items)}
			_, choice, err := sel.Run()
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || choice == chatQuit {
				fmt.Fprintln(out, ChatGoodbye)
				return nil
			}
			if err != nil {
				return err
			}
			if choice == chatOwnQuestion {
				prompt := promptui.Prompt{Label: "質問"}
				if choice, err = prompt.Run(); err != nil {
					fmt.Fprintln(out, ChatGoodbye)
					return nil
				}
			}

			fmt.Fprintln(out, "…")
			ex, err := c.Ask(cmd.Context(), choice)
			if errors.Is(err, chat.ErrEmptyMessage) {
				continue
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "[%s] %s\n\n", ex.Bot.Clock(), ex.Bot.Text)
		}
	},
}

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Show skill levels as bars",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printSkills(cmd.OutOrStdout(), profile.Default())
	},
}

func printSkills(w io.Writer, p *profile.Profile) error {
	for _, s := range p.Skills.Levels {
		bar := progressbar.NewOptions(100,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription(fmt.Sprintf("%-18s", s.Name)),
			progressbar.OptionSetWidth(30),
			progressbar.OptionSetPredictTime(false),
		)
		if err := bar.Set(s.Level); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	return nil
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the FAQ assistant as an MCP tool on stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := profile.Default()
		return server.ServeStdio(mcpserver.New(responder.New(p), p))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, askCmd, chatCmd, skillsCmd, mcpCmd)
}
