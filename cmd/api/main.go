package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"vouchers-system/application"
	"vouchers-system/presenters"
	"vouchers-system/utils/configs"
	"vouchers-system/utils/gen_ids"
	"vouchers-system/utils/gpooling"
	logger2 "vouchers-system/utils/logger"
)

func main() {
	config, err := configs.LoadConfig()
	if err != nil {
		panic(err)
	}
	lg, _ := logger2.NewLogger(config.ENV)

	pool_go_routine, _ := gpooling.NewPooling(config.MaxPoolSize)

	app := application.NewVoucherApplication(config, lg, pool_go_routine)

	gen_ids.InitGenIDservice()

	srv := &http.Server{
		Addr:    config.Port,
		Handler: presenters.NewRouter(app),
	}

	sig := make(chan os.Signal, 1)

	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	pool_go_routine.Submit(func() {
		select {
		case <-sig:
			lg.Warn("shutting down http server...")

			ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
			defer cancel()

			_ = srv.Shutdown(ctx)
			app.KafkaConnection.Close()
			pool_go_routine.Release()
		}
	})

	if config.Job {
		pool_go_routine.Submit(func() {
			for {
				select {
				case <-time.Tick(time.Minute * 5):
					app.JobRetryFailedDeliveries()
				}
			}
		})
	}

	lg.With(zap.Field{
		Key:    "port",
		Type:   zapcore.StringType,
		String: config.Port,
	}).Info("starting http server...")

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		panic(err)
	}
}
