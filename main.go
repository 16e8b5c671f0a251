package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/grpcreflect"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	easy "github.com/t-tomalak/logrus-easy-formatter"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/safestride/routing/api/saferoute/v1/saferoutev1connect"
)

var log = logrus.WithField("module", "main")

var (
	LOG_LEVELS = map[string]logrus.Level{
		"debug": logrus.DebugLevel,
		"info":  logrus.InfoLevel,
		"warn":  logrus.WarnLevel,
		"error": logrus.ErrorLevel,
		"fatal": logrus.FatalLevel,
		"panic": logrus.PanicLevel,
	}

	v       = viper.New()
	cfg     *Config
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "saferoute",
	Short: "Safety-aware pedestrian routing",
	Long:  "Routes pedestrians along the safest streets of a city, scoring edges from historical crimes and live incident reports.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := LoadConfig(v, cfgFile)
		if err != nil {
			return err
		}
		cfg = c
		logrus.SetLevel(LOG_LEVELS[cfg.Log.Level])
		return nil
	},
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the routing service",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level [debug, info, warn, error, fatal, panic]")
	rootCmd.PersistentFlags().String("network", "", "osmnx GeoJSON export of the street network")
	rootCmd.PersistentFlags().String("crimes", "", "crimes data [format: {fspath} or {db}.{col}]")
	rootCmd.PersistentFlags().String("mongo-uri", "", "mongo db uri")
	rootCmd.PersistentFlags().Bool("offline", false, "keep reports in memory and skip every remote service except the geocoder")
	_ = v.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("network.path", rootCmd.PersistentFlags().Lookup("network"))
	_ = v.BindPFlag("mongo.crimes", rootCmd.PersistentFlags().Lookup("crimes"))
	_ = v.BindPFlag("mongo.uri", rootCmd.PersistentFlags().Lookup("mongo-uri"))
	_ = v.BindPFlag("offline", rootCmd.PersistentFlags().Lookup("offline"))

	serveCmd.Flags().String("listen", "localhost:52101", "connect listening address")
	serveCmd.Flags().String("pprof", "localhost:52102", "pprof and metrics listening address, empty disables it")
	_ = v.BindPFlag("listen", serveCmd.Flags().Lookup("listen"))
	_ = v.BindPFlag("pprof", serveCmd.Flags().Lookup("pprof"))

	rootCmd.AddCommand(serveCmd, benchmarkCmd)
}

func newMux(server *SafeRouteServer) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle(saferoutev1connect.NewSafeRouteServiceHandler(server))
	reflector := grpcreflect.NewStaticReflector(
		saferoutev1connect.SafeRouteServiceName,
	)
	mux.Handle(grpcreflect.NewHandlerV1(reflector))
	mux.Handle(grpcreflect.NewHandlerV1Alpha(reflector))
	mux.Handle("/", legacyHandler(server))
	return mux
}

func serve(ctx context.Context) error {
	app, err := NewApp(ctx, cfg)
	if err != nil {
		return err
	}
	server := NewSafeRouteServer(app)

	var debug *http.Server
	if cfg.Pprof != "" {
		debug = startHTTPDebugger(cfg.Pprof)
	}

	// HTTP/2 w.o. TLS
	s := &http.Server{
		Addr:    cfg.Listen,
		Handler: h2c.NewHandler(newMux(server), &http2.Server{}),
	}

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signalCh
		log.Info("stopping...")
		go func() {
			<-signalCh
			os.Exit(1) // forced
		}()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			log.Warnf("shutdown: %v", err)
		}
		if debug != nil {
			debug.Close()
		}
	}()

	log.Infof("server listening at %v", s.Addr)
	if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		server.Close()
		return err
	}
	// drains pending incident updates
	server.Close()
	log.Info("routing closes")
	return nil
}

func main() {
	logrus.SetFormatter(&easy.Formatter{
		TimestampFormat: "2006-01-02 15:04:05.0000",
		LogFormat:       "[%module%] [%time%] [%lvl%] %msg%\n",
	})
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
