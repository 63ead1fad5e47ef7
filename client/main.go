// Dev/test client for dev/test/troubleshooting. Drives the whole flow against
// a locally running development service: register, verify, submit a report,
// list, stats.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"

	"github.com/apex/log"

	"roadwatch/api"
	"roadwatch/devserver"
	"roadwatch/gate"
	"roadwatch/notify"
	"roadwatch/persist"
	"roadwatch/pipeline"
	"roadwatch/remote"
	"roadwatch/report"
	"roadwatch/session"
	"roadwatch/store"
)

var (
	serviceUrl   = flag.String("url", "http://127.0.0.1:8080", "Base URL of the service.")
	persistWith  = flag.String("persist", "mem", "Session persistence backend: mem, mysql or redis.")
	redisAddress = flag.String("redis_address", "localhost:6379", "Redis address for -persist=redis.")
)

func RandomizeFloat(v, max float64) float64 {
	return v + rand.Float64()*2*max - max
}

func localStore(ctx context.Context) persist.Store {
	switch *persistWith {
	case "mysql":
		s, err := persist.OpenSQLStore(ctx)
		if err != nil {
			log.Fatalf("Failed to open the MySQL cache: %v", err)
		}
		return s
	case "redis":
		s, err := persist.NewRedisStore(ctx, persist.RedisConfig{Addr: *redisAddress})
		if err != nil {
			log.Fatalf("Failed to open the Redis cache: %v", err)
		}
		return s
	}
	return persist.NewMemStore()
}

func main() {
	flag.Parse()
	ctx := context.Background()

	client := remote.NewClient(*serviceUrl)
	notifier := &notify.Logger{}
	g := gate.New(gate.AlwaysOnline, notifier)
	lifecycle := session.NewLifecycle(client, g, notifier, localStore(ctx))
	if err := lifecycle.Load(ctx); err != nil {
		log.Warnf("Could not restore a previous session: %v", err)
	}
	st := store.New()
	p := pipeline.New(g, notifier, client, st)

	email := fmt.Sprintf("dev-%X@example.com", rand.Uint64())
	log.Infof("Registering %s", email)
	if sig := lifecycle.Register(ctx, api.CreateUser{
		Username: "dev",
		Email:    email,
		Password: "dev-password",
	}, "en"); sig != session.SignalVerify {
		log.Fatalf("Registration did not reach verification, signal %q", sig)
	}
	userId := lifecycle.Snapshot().User.Id

	log.Infof("Verifying %s with the fixed dev code", userId)
	if sig := lifecycle.SubmitVerificationCode(ctx, userId, devserver.DevCode); sig != session.SignalHome {
		log.Fatalf("Verification failed, signal %q", sig)
	}

	log.Info("Submitting a quick report")
	out := p.Submit(ctx, userId, report.Quick{
		RoadType:             report.Section,
		Condition:            report.PavementCondition,
		ConditionDescription: "large pothole near the crossing",
		Severity:             4,
		Images:               []string{"dev.png"},
	}, report.KindQuick, api.Point{
		Lat: RandomizeFloat(35.1293548, 1.0),
		Lon: RandomizeFloat(-90.1222609, 1.0),
	})
	if !out.Submitted {
		log.Fatalf("Report submission failed: %+v", out)
	}

	if err := st.Refresh(ctx, client); err != nil {
		log.Fatalf("Failed to refresh reports: %v", err)
	}
	for _, r := range st.All() {
		log.Infof("Report %d by %s at %s: %s", r.Seq, r.UserId, r.Timestamp, r.Report.ReportType)
	}

	stats, err := client.GetStats(ctx, userId)
	if err != nil {
		log.Fatalf("Failed to fetch stats: %v", err)
	}
	log.Infof("Done, %d reports, impact %s today, %s total", stats.Reports, stats.ImpactDaily, stats.ImpactTotal)
}
