package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hr-dashboard/internal/httpapi"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard's lists and feeds over HTTP",
	Long: `Serve the list screens, saved views and activity feeds as a JSON API.

Routes:
  GET  /api/screens                       list screens and their fields
  GET  /api/screens/{screen}              derive a screen (?search= &filter= &sort= &dir= &view= &q=)
  GET  /api/screens/{screen}/views        saved views of a screen
  GET  /api/users/{id}/feed               an employee's feed (?unread=true)
  POST /api/users/{id}/feed/read          mark an employee's feed read
  POST /api/notifications/{id}/read       mark one notification read
  GET  /metrics                           Prometheus metrics

Examples:
  hrdash serve
  hrdash serve --addr :9090`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return withApp(func(a *app) error {
			addr := a.cfg.ListenAddr
			if serveAddr != "" {
				addr = serveAddr
			}

			a.logger.Info("serving", zap.String("addr", addr))
			return httpapi.NewServer(a.store, a.registry, a.logger).ListenAndServe(ctx, addr)
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address, overriding listen_addr from config")
}
