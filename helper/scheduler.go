package helper

import (
	"fmt"
	"log"
	"net/smtp"
	"time"

	"essence_store/config"
	"essence_store/database"
	"essence_store/model"

	"github.com/go-co-op/gocron/v2"
	"github.com/jordan-wright/email"
	"github.com/robfig/cron/v3"
)

var statsScheduler *cron.Cron
var digestScheduler gocron.Scheduler

// StartStatsScheduler keeps the dashboard cache warm every 5 minutes.
func StartStatsScheduler() {
	statsScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))
	statsScheduler.AddFunc("@every 5m", WarmStatsCache)
	statsScheduler.Start()
}

func StopStatsScheduler() {
	if statsScheduler != nil {
		statsScheduler.Stop()
	}
}

// StartDigestScheduler mails a short order summary to the shop inbox at 08:00
// IST every day.
func StartDigestScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.FixedZone("IST", int((5*time.Hour + 30*time.Minute).Seconds()))),
	)
	if err != nil {
		log.Printf("digest scheduler init failed: %v", err)
		return
	}

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(8, 0, 0),
			),
		),
		gocron.NewTask(SendDailyDigest),
	)
	if err != nil {
		log.Printf("digest job registration failed: %v", err)
		return
	}

	digestScheduler = s
	s.Start()
}

func StopDigestScheduler() {
	if digestScheduler != nil {
		digestScheduler.Shutdown()
	}
}

// SendDailyDigest summarizes yesterday's orders in a plain-text email.
func SendDailyDigest() {
	db := database.DB
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	prevStart := dayStart.AddDate(0, 0, -1)

	var count int64
	var revenue float64
	db.Model(&model.Order{}).
		Where("created_at >= ? AND created_at < ?", prevStart, dayStart).
		Count(&count)
	db.Model(&model.Order{}).
		Where("created_at >= ? AND created_at < ?", prevStart, dayStart).
		Select("COALESCE(SUM(total), 0)").
		Scan(&revenue)

	var pending int64
	db.Model(&model.Order{}).Where("status = ?", "pending").Count(&pending)

	body := fmt.Sprintf(
		"Essence Clean daily summary for %s\n\nOrders placed: %d\nOrder value: %.2f\nOrders still pending: %d\n",
		prevStart.Format("2 Jan 2006"), count, revenue, pending,
	)

	host := config.Config("SMTP_HOST")
	addr := host + ":" + config.ConfigOr("SMTP_PORT", "587")
	user := config.Config("SMTP_USERNAME")

	e := email.NewEmail()
	e.From = config.ConfigOr("SMTP_FROM", "Essence Clean <support@essenceclean.com>")
	e.To = []string{config.ConfigOr("DIGEST_TO", "orders@essenceclean.com")}
	e.Subject = "Daily order digest - " + prevStart.Format("2 Jan 2006")
	e.Text = []byte(body)

	if err := e.Send(addr, smtp.PlainAuth("", user, config.Config("SMTP_PASSWORD"), host)); err != nil {
		log.Printf("daily digest send failed: %v", err)
	}
}
