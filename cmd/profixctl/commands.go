package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"profix/internal/api"
	"profix/internal/availability"
	"profix/internal/export"
	"profix/internal/models"
	"profix/internal/screens"
	"profix/internal/session"
	"profix/internal/tracking"
	"profix/internal/validation"
)

type command struct {
	summary      string
	serveMetrics bool
	run          func(ctx context.Context, a *app, args []string) error
}

var commands = map[string]command{
	"register":        {summary: "create a customer or provider account", run: cmdRegister},
	"login":           {summary: "log in as user, provider or admin", run: cmdLogin},
	"logout":          {summary: "end the current session", run: cmdLogout},
	"whoami":          {summary: "show the current session", run: cmdWhoami},
	"providers":       {summary: "list services, providers, or one provider's details", run: cmdProviders},
	"book":            {summary: "book a provider", run: cmdBook},
	"bookings":        {summary: "list your bookings", run: cmdBookings},
	"status":          {summary: "change a booking's status (provider)", run: cmdStatus},
	"schedule":        {summary: "show a month of availability (provider)", run: cmdSchedule},
	"set-day":         {summary: "set one day's availability (provider)", run: cmdSetDay},
	"copy-day":        {summary: "copy one day's availability to other days (provider)", run: cmdCopyDay},
	"review":          {summary: "rate a completed booking", run: cmdReview},
	"notifications":   {summary: "list or mark notifications", run: cmdNotifications},
	"chat":            {summary: "ask the service chatbot or the assistant", run: cmdChat},
	"track":           {summary: "follow or share a booking's live location", serveMetrics: true, run: cmdTrack},
	"earnings-export": {summary: "write earnings to an xlsx workbook (provider)", run: cmdEarningsExport},
	"profile":         {summary: "show or update your profile", run: cmdProfile},
	"portfolio":       {summary: "list, upload or delete portfolio photos (provider)", run: cmdPortfolio},
	"approvals":       {summary: "review pending providers (admin)", run: cmdApprovals},
	"delete-account":  {summary: "delete your account", run: cmdDeleteAccount},
}

// screenError turns a controller failure into the message its screen shows.
func screenError(msg string, err error) error {
	if err == nil {
		return nil
	}
	if msg == "" {
		return err
	}
	return errors.New(msg)
}

func newFlags(name string) *flag.FlagSet {
	return flag.NewFlagSet(name, flag.ContinueOnError)
}

func parseID(s string) (models.ID, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return models.ID(v), nil
}

// parseDates reads a comma-separated list of YYYY-MM-DD dates.
func parseDates(s string) ([]time.Time, error) {
	var out []time.Time
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := availability.ParseDate(part)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", part, err)
		}
		out = append(out, d)
	}
	return out, nil
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func cmdRegister(ctx context.Context, a *app, args []string) error {
	fs := newFlags("register")
	role := fs.String("role", models.RoleUser, "user or provider")
	name := fs.String("name", "", "full name")
	email := fs.String("email", "", "gmail address")
	phone := fs.String("phone", "", "10-digit phone")
	dob := fs.String("dob", "", "date of birth YYYY-MM-DD (user)")
	address := fs.String("address", "", "address")
	city := fs.String("city", "", "city")
	pincode := fs.String("pincode", "", "6-digit pincode")
	password := fs.String("password", "", "password")
	service := fs.Int64("service", 0, "service id (provider)")
	rate := fs.Float64("rate", 0, "hourly rate (provider)")
	experience := fs.Int("experience", 0, "years of experience (provider)")
	description := fs.String("description", "", "about your work (provider)")
	aadhaar := fs.String("aadhaar", "", "12-digit aadhaar, optional (provider)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	r := screens.NewRegister(a.client)
	var (
		msg string
		err error
	)
	switch *role {
	case models.RoleUser:
		msg, err = r.SubmitUser(ctx, validation.UserRegistration{
			FullName:        *name,
			Email:           *email,
			Phone:           validation.DigitsOnly(*phone, 10),
			DOB:             *dob,
			Address:         *address,
			City:            *city,
			Pincode:         validation.DigitsOnly(*pincode, 6),
			Password:        *password,
			ConfirmPassword: *password,
		})
	case models.RoleProvider:
		msg, err = r.SubmitProvider(ctx, validation.ProviderRegistration{
			FullName:        *name,
			Email:           *email,
			Phone:           validation.DigitsOnly(*phone, 10),
			ServiceID:       models.ID(*service),
			HourlyRate:      *rate,
			ExperienceYears: *experience,
			Description:     *description,
			Address:         *address,
			City:            *city,
			Pincode:         validation.DigitsOnly(*pincode, 6),
			Aadhaar:         validation.DigitsOnly(*aadhaar, 12),
			Password:        *password,
			ConfirmPassword: *password,
		})
	default:
		return fmt.Errorf("role must be user or provider, got %q", *role)
	}
	if errors.Is(err, screens.ErrInvalidInput) {
		for _, f := range []string{"full_name", "email", "phone", "dob", "service_id", "hourly_rate", "experience_years", "address", "city", "pincode", "aadhaar", "password"} {
			if m := r.FieldError(f); m != "" {
				fmt.Fprintf(a.out, "%s: %s\n", f, m)
			}
		}
		return err
	}
	if err != nil {
		return screenError(r.Message(), err)
	}
	fmt.Fprintln(a.out, msg)
	return nil
}

func cmdLogin(ctx context.Context, a *app, args []string) error {
	fs := newFlags("login")
	role := fs.String("role", models.RoleUser, "user, provider or admin")
	email := fs.String("email", "", "email")
	password := fs.String("password", os.Getenv("PROFIX_PASSWORD"), "password (or PROFIX_PASSWORD)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	l := screens.NewLogin(a.client, a.sessions, *role)
	s, err := l.Submit(ctx, validation.LoginForm{Email: *email, Password: *password})
	if err != nil {
		return screenError(l.Message(), err)
	}
	fmt.Fprintf(a.out, "Logged in as %s (%s)\n", s.Name, s.Role)
	return nil
}

func cmdLogout(ctx context.Context, a *app, _ []string) error {
	if err := a.sessions.End(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func cmdWhoami(ctx context.Context, a *app, _ []string) error {
	s, err := a.sessions.Current(ctx)
	if errors.Is(err, session.ErrNoSession) {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s <%s> %s #%d since %s\n", s.Name, s.Email, s.Role, s.UserID, s.CreatedAt.Format(time.RFC822))
	return nil
}

func cmdProviders(ctx context.Context, a *app, args []string) error {
	fs := newFlags("providers")
	services := fs.Bool("services", false, "list service categories")
	service := fs.Int64("service", 0, "filter by service id")
	city := fs.String("city", "", "filter by city")
	id := fs.Int64("id", 0, "show one provider")
	if err := fs.Parse(args); err != nil {
		return err
	}

	b := screens.NewBrowse(a.client)
	w := newTable(a.out)
	defer w.Flush()

	switch {
	case *services:
		if err := b.LoadServices(ctx); err != nil {
			return screenError(b.Message(), err)
		}
		fmt.Fprintln(w, "ID\tSERVICE\tDESCRIPTION")
		for _, s := range b.Services() {
			fmt.Fprintf(w, "%d\t%s\t%s\n", s.ID, s.Name, s.Description)
		}
	case *id != 0:
		if err := b.Open(ctx, models.ID(*id)); err != nil {
			return screenError(b.Message(), err)
		}
		d := b.Details()
		p := d.Provider
		fmt.Fprintf(w, "%s\t%s, %s\n", p.FullName, p.ServiceName, p.City)
		fmt.Fprintf(w, "Rate\t₹%.2f/hr\n", float64(p.HourlyRate))
		fmt.Fprintf(w, "Rating\t%.1f (%d reviews)\n", float64(p.Rating), p.TotalReviews)
		fmt.Fprintf(w, "Honor\t%s (%.0f)\n", p.HonorTier(), float64(p.HonorScore))
		fmt.Fprintf(w, "Experience\t%d years\n", p.ExperienceYears)
		if ra := b.ReviewAnalysis(); ra != nil {
			fmt.Fprintf(w, "Sentiment\t%d positive, %d negative\n", ra.PositiveCount, ra.NegativeCount)
		}
		for _, r := range d.Reviews {
			fmt.Fprintf(w, "  %d★\t%s\n", r.Rating, r.Comment)
		}
	default:
		if err := b.LoadProviders(ctx, models.ID(*service), *city); err != nil {
			return screenError(b.Message(), err)
		}
		fmt.Fprintln(w, "ID\tNAME\tSERVICE\tCITY\tRATE\tRATING\tHONOR")
		for _, p := range b.Providers() {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%.2f\t%.1f\t%s\n",
				p.ID, p.FullName, p.ServiceName, p.City, float64(p.HourlyRate), float64(p.Rating), p.HonorTier())
		}
	}
	return nil
}

func cmdBook(ctx context.Context, a *app, args []string) error {
	fs := newFlags("book")
	provider := fs.Int64("provider", 0, "provider id")
	date := fs.String("date", "", "YYYY-MM-DD")
	clock := fs.String("time", "", "HH:MM")
	address := fs.String("address", "", "service address")
	city := fs.String("city", "", "city")
	pincode := fs.String("pincode", "", "pincode")
	hours := fs.Int("hours", screens.MinBookingHours, "estimated hours (1-12)")
	description := fs.String("description", "", "what needs doing")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.sessions.Require(ctx, models.RoleUser)
	if err != nil {
		return err
	}
	details, err := a.client.GetProviderDetails(ctx, models.ID(*provider))
	if err != nil {
		return screenError(api.UserMessage(err), err)
	}

	bc := screens.NewBookingConfirm(availability.NewRepository(a.client, a.logger), a.client, user, details.Provider)
	if *date != "" {
		d, err := availability.ParseDate(*date)
		if err != nil {
			return err
		}
		if err := bc.PickDate(ctx, d); err != nil {
			return screenError(bc.Message(), err)
		}
	}
	if *clock != "" {
		if err := bc.SetTime(*clock); err != nil {
			return err
		}
	}
	bc.SetAddress(*address, *city, *pincode)
	bc.SetDescription(*description)
	bc.SetHours(*hours)

	created, err := bc.Submit(ctx)
	if err != nil {
		return screenError(bc.Message(), err)
	}
	fmt.Fprintf(a.out, "Booking #%d %s, total ₹%.2f\n", created.ID, created.Status, float64(created.TotalAmount))
	return nil
}

func printBookings(w io.Writer, list []models.Booking, provider bool) {
	t := newTable(w)
	defer t.Flush()
	fmt.Fprintln(t, "ID\tDATE\tTIME\tSERVICE\tWITH\tHOURS\tAMOUNT\tSTATUS")
	for _, b := range list {
		with := b.ProviderName
		if provider {
			with = b.UserName
		}
		fmt.Fprintf(t, "%d\t%s\t%s\t%s\t%s\t%d\t%.2f\t%s\n",
			b.ID, b.BookingDate, b.BookingTime, b.ServiceName, with, b.EstimatedHours, float64(b.TotalAmount), b.Status)
	}
}

func cmdBookings(ctx context.Context, a *app, args []string) error {
	fs := newFlags("bookings")
	tabName := fs.String("tab", "all", "all, pending, active or completed")
	byAmount := fs.Bool("by-amount", false, "highest amount first (provider)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	tab, err := screens.ParseTab(*tabName)
	if err != nil {
		return err
	}

	s, err := a.sessions.Require(ctx, models.RoleUser, models.RoleProvider)
	if err != nil {
		return err
	}
	if s.Role == models.RoleProvider {
		p := screens.NewProviderBookings(a.client, s.UserID)
		if err := p.Load(ctx); err != nil {
			return screenError(p.Message(), err)
		}
		printBookings(a.out, p.Tab(tab, *byAmount), true)
		return nil
	}

	u := screens.NewUserBookings(a.client, s.UserID)
	if err := u.Load(ctx); err != nil {
		return screenError(u.Message(), err)
	}
	printBookings(a.out, u.Tab(tab), false)
	return nil
}

func cmdStatus(ctx context.Context, a *app, args []string) error {
	fs := newFlags("status")
	booking := fs.Int64("booking", 0, "booking id")
	to := fs.String("to", "", "accepted, in_progress, completed or cancelled")
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := a.sessions.Require(ctx, models.RoleProvider)
	if err != nil {
		return err
	}

	p := screens.NewProviderBookings(a.client, s.UserID)
	if err := p.SetStatus(ctx, models.ID(*booking), strings.TrimSpace(*to)); err != nil {
		return screenError(p.Message(), err)
	}
	fmt.Fprintln(a.out, p.Message())
	return nil
}

// openEditor loads the schedule editor on the month of start.
func openEditor(ctx context.Context, a *app, start time.Time) (*availability.Editor, error) {
	s, err := a.sessions.Require(ctx, models.RoleProvider)
	if err != nil {
		return nil, err
	}
	e := availability.NewEditor(availability.NewRepository(a.client, a.logger), a.client, s.UserID, start, a.logger)
	if err := e.Load(ctx); err != nil {
		return nil, screenError(e.Message(), err)
	}
	return e, nil
}

func cmdSchedule(ctx context.Context, a *app, args []string) error {
	fs := newFlags("schedule")
	month := fs.String("month", time.Now().Format("2006-01"), "YYYY-MM")
	if err := fs.Parse(args); err != nil {
		return err
	}
	start, err := time.Parse("2006-01", *month)
	if err != nil {
		return fmt.Errorf("invalid month %q", *month)
	}

	e, err := openEditor(ctx, a, start)
	if err != nil {
		return err
	}
	year, m := e.Shown()
	data := e.Data()

	fmt.Fprintf(a.out, "%s %d   (x = unavailable, * = custom hours)\n", m, year)
	fmt.Fprintln(a.out, " Sun  Mon  Tue  Wed  Thu  Fri  Sat")
	for _, week := range availability.MonthGrid(year, m) {
		var line strings.Builder
		for _, d := range week {
			if d.IsZero() {
				line.WriteString("     ")
				continue
			}
			mark := " "
			if rec, ok := data.Get(d); ok {
				switch {
				case rec.IsUnavailable():
					mark = "x"
				case rec.StartTime != models.DefaultStartTime || rec.EndTime != models.DefaultEndTime:
					mark = "*"
				}
			}
			fmt.Fprintf(&line, " %2d%s ", d.Day(), mark)
		}
		fmt.Fprintln(a.out, line.String())
	}

	w := newTable(a.out)
	defer w.Flush()
	for _, week := range availability.MonthGrid(year, m) {
		for _, d := range week {
			if rec, ok := data.Get(d); ok {
				fmt.Fprintf(w, "%s\t%s\t%s - %s\n", rec.Date, rec.Status,
					availability.FormatClock(rec.StartTime), availability.FormatClock(rec.EndTime))
			}
		}
	}
	return nil
}

func cmdSetDay(ctx context.Context, a *app, args []string) error {
	fs := newFlags("set-day")
	date := fs.String("date", "", "YYYY-MM-DD")
	status := fs.String("status", models.AvailabilityAvailable, "available or unavailable")
	start := fs.String("start", "", "start HH:MM (default keeps the current value)")
	end := fs.String("end", "", "end HH:MM (default keeps the current value)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	d, err := availability.ParseDate(*date)
	if err != nil {
		return fmt.Errorf("invalid date %q", *date)
	}

	e, err := openEditor(ctx, a, d)
	if err != nil {
		return err
	}
	buf, err := e.Select(d)
	if err != nil {
		return err
	}
	if err := e.SetStatus(*status); err != nil {
		return err
	}
	s, en := buf.StartTime, buf.EndTime
	if *start != "" {
		s = *start
	}
	if *end != "" {
		en = *end
	}
	if err := e.SetHours(s, en); err != nil {
		return err
	}
	if err := e.Save(ctx); err != nil {
		return screenError(e.Message(), err)
	}
	fmt.Fprintln(a.out, e.Message())
	return nil
}

func cmdCopyDay(ctx context.Context, a *app, args []string) error {
	fs := newFlags("copy-day")
	from := fs.String("from", "", "source date YYYY-MM-DD")
	modeName := fs.String("mode", "explicit", "weekdays, weekends or explicit")
	to := fs.String("to", "", "comma-separated target dates (explicit mode)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	src, err := availability.ParseDate(*from)
	if err != nil {
		return fmt.Errorf("invalid date %q", *from)
	}
	mode, err := availability.ParseCopyMode(*modeName)
	if err != nil {
		return err
	}
	explicit, err := parseDates(*to)
	if err != nil {
		return err
	}

	e, err := openEditor(ctx, a, src)
	if err != nil {
		return err
	}
	if _, err := e.Select(src); err != nil {
		return err
	}
	targets, err := e.CopyTargets(mode, explicit...)
	if err != nil {
		return err
	}
	if err := e.Copy(ctx, targets); err != nil {
		return screenError(e.Message(), err)
	}
	fmt.Fprintf(a.out, "%s (%d days)\n", e.Message(), len(targets))
	return nil
}

func cmdReview(ctx context.Context, a *app, args []string) error {
	fs := newFlags("review")
	booking := fs.Int64("booking", 0, "completed booking id")
	rating := fs.Int("rating", 0, "1 to 5 stars")
	comment := fs.String("comment", "", "optional comment")
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := a.sessions.Require(ctx, models.RoleUser)
	if err != nil {
		return err
	}

	r := screens.NewRating(a.client, models.ID(*booking), s.UserID)
	if err := r.Submit(ctx, validation.ReviewForm{Rating: *rating, Comment: *comment}); err != nil {
		return screenError(r.Message(), err)
	}
	fmt.Fprintln(a.out, r.Message())
	return nil
}

func cmdNotifications(ctx context.Context, a *app, args []string) error {
	fs := newFlags("notifications")
	read := fs.Int64("read", 0, "mark one notification read")
	all := fs.Bool("all", false, "mark every notification read")
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := a.sessions.Require(ctx, models.RoleUser, models.RoleProvider)
	if err != nil {
		return err
	}

	n := screens.NewNotifications(a.client, s)
	if err := n.Load(ctx); err != nil {
		return screenError(n.Message(), err)
	}
	switch {
	case *all:
		if err := n.MarkAll(ctx); err != nil {
			return screenError(n.Message(), err)
		}
	case *read != 0:
		if err := n.MarkRead(ctx, models.ID(*read)); err != nil {
			return screenError(n.Message(), err)
		}
	}

	w := newTable(a.out)
	defer w.Flush()
	fmt.Fprintf(w, "%d unread\n", n.Unread())
	for _, it := range n.Items() {
		mark := " "
		if !it.IsRead {
			mark = "•"
		}
		fmt.Fprintf(w, "%s %d\t%s\t%s\t%s\n", mark, it.ID, it.Title, it.Message, it.CreatedAt)
	}
	return nil
}

func cmdChat(ctx context.Context, a *app, args []string) error {
	fs := newFlags("chat")
	assistant := fs.Bool("assistant", false, "ask the backend assistant instead of the service chatbot")
	classify := fs.Bool("classify", false, "print the backend's intent label for the message")
	if err := fs.Parse(args); err != nil {
		return err
	}
	text := strings.Join(fs.Args(), " ")
	if strings.TrimSpace(text) == "" {
		return errors.New("usage: profixctl chat [--assistant] [--classify] <message>")
	}

	if *classify {
		intent := api.NewIntentClassifier(a.client, a.logger).Classify(ctx, text)
		fmt.Fprintf(a.out, "intent: %s\n", intent)
	}

	if *assistant {
		s, err := a.sessions.Require(ctx, models.RoleUser, models.RoleProvider)
		if err != nil {
			return err
		}
		c := screens.NewAssistantChat(a.client, s)
		err = c.Send(ctx, text)
		msgs := c.Messages()
		fmt.Fprintln(a.out, msgs[len(msgs)-1].Text)
		return err
	}

	c := screens.NewServiceChat(a.chat, api.NewServiceRouter(api.DefaultServiceCategories()))
	err := c.Send(ctx, text)
	msgs := c.Messages()
	fmt.Fprintln(a.out, msgs[len(msgs)-1].Text)
	if err != nil {
		return err
	}
	if svc := c.Navigate(); svc != nil {
		return cmdProviders(ctx, a, []string{"-service", strconv.FormatInt(int64(svc.ID), 10)})
	}
	return nil
}

// fixedSource reports the coordinate given on the command line.
type fixedSource struct {
	c   tracking.Coordinate
	set bool
}

func (f fixedSource) Current(context.Context) (tracking.Coordinate, error) {
	if !f.set {
		return tracking.Coordinate{}, tracking.ErrNoFix
	}
	return f.c, nil
}

func cmdTrack(ctx context.Context, a *app, args []string) error {
	fs := newFlags("track")
	booking := fs.Int64("booking", 0, "booking id")
	lat := fs.Float64("lat", 0, "latitude to share (provider)")
	lng := fs.Float64("lng", 0, "longitude to share (provider)")
	once := fs.Bool("once", false, "share a single update and exit (provider)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := a.sessions.Require(ctx, models.RoleUser, models.RoleProvider)
	if err != nil {
		return err
	}
	bookingID := models.ID(*booking)

	if s.Role == models.RoleProvider {
		src := fixedSource{c: tracking.Coordinate{Latitude: *lat, Longitude: *lng}}
		fs.Visit(func(f *flag.Flag) {
			if f.Name == "lat" || f.Name == "lng" {
				src.set = true
			}
		})
		sharer := tracking.NewSharer(a.client, a.cfg.Tracking.ShareInterval, a.logger)
		if *once {
			sh := screens.NewShare(sharer, s.UserID, bookingID)
			if err := sh.Once(ctx, src); err != nil {
				return screenError(sh.Message(), err)
			}
			fmt.Fprintln(a.out, sh.Message())
			return nil
		}
		fmt.Fprintln(a.out, "Sharing location, Ctrl-C to stop")
		return sharer.Run(ctx, s.UserID, bookingID, src)
	}

	poller := tracking.NewPoller(a.client, a.cfg.Tracking.PollInterval, a.logger)
	t := screens.NewTracking(poller, bookingID)
	return t.Run(ctx, func(t *screens.Tracking) {
		now := time.Now().Format("15:04:05")
		if msg := t.Message(); msg != "" {
			fmt.Fprintf(a.out, "%s  %s\n", now, msg)
			return
		}
		if fix := t.LastFix(); fix != nil {
			fmt.Fprintf(a.out, "%s  %s at %.6f, %.6f (updated %s)\n", now, fix.ProviderName,
				float64(*fix.Latitude), float64(*fix.Longitude), fix.LastUpdated)
		}
	})
}

func cmdEarningsExport(ctx context.Context, a *app, args []string) error {
	fs := newFlags("earnings-export")
	periodName := fs.String("period", "all", "week, month or all")
	if err := fs.Parse(args); err != nil {
		return err
	}
	period, err := screens.ParsePeriod(*periodName)
	if err != nil {
		return err
	}
	s, err := a.sessions.Require(ctx, models.RoleProvider)
	if err != nil {
		return err
	}

	e := screens.NewEarnings(a.client, s.UserID)
	if err := e.Load(ctx); err != nil {
		return screenError(e.Message(), err)
	}
	if msg := e.Message(); msg != "" {
		a.logger.Warn().Str("message", msg).Msg("earnings loaded without stats")
	}

	path, err := export.NewExporter(a.cfg.Exports.Path, a.logger).EarningsWorkbook(e.Export(period, s.Name))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s: %d jobs, ₹%.2f -> %s\n", period, len(e.In(period)), e.Total(period), path)
	return nil
}

func loadImage(path string) (api.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return api.Image{}, err
	}
	return api.Image{Filename: filepath.Base(path), Data: data}, nil
}

func cmdProfile(ctx context.Context, a *app, args []string) error {
	fs := newFlags("profile")
	name := fs.String("name", "", "new full name")
	phone := fs.String("phone", "", "new phone")
	address := fs.String("address", "", "new address")
	city := fs.String("city", "", "new city")
	pincode := fs.String("pincode", "", "new pincode")
	photo := fs.String("photo", "", "upload a profile photo from this file")
	description := fs.String("description", "", "new description (provider)")
	rate := fs.Float64("rate", 0, "new hourly rate (provider)")
	available := fs.String("available", "", "true or false (provider)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := a.sessions.Require(ctx, models.RoleUser, models.RoleProvider)
	if err != nil {
		return err
	}
	update := validation.ProfileUpdate{FullName: *name, Phone: *phone, Address: *address, City: *city, Pincode: *pincode}
	editing := fs.NFlag() > 0
	if *photo != "" {
		editing = fs.NFlag() > 1
	}

	var img *api.Image
	if *photo != "" {
		i, err := loadImage(*photo)
		if err != nil {
			return err
		}
		img = &i
	}

	if s.Role == models.RoleProvider {
		p := screens.NewProviderProfile(a.client, a.sessions, s.UserID)
		if err := p.Load(ctx); err != nil {
			return screenError(p.Message(), err)
		}
		if editing {
			form := screens.ProviderProfileUpdate{ProfileUpdate: update, Description: *description}
			if *rate != 0 {
				form.HourlyRate = rate
			}
			if *available != "" {
				v, err := strconv.ParseBool(*available)
				if err != nil {
					return fmt.Errorf("invalid -available %q", *available)
				}
				form.IsAvailable = &v
			}
			if err := p.Save(ctx, form); err != nil {
				return profileError(a.out, p.Message(), p.FieldError, err)
			}
			fmt.Fprintln(a.out, p.Message())
		}
		if img != nil {
			if _, err := p.UploadPhoto(ctx, *img); err != nil {
				return screenError(p.Message(), err)
			}
			fmt.Fprintln(a.out, p.Message())
		}
		pr := p.Provider()
		fmt.Fprintf(a.out, "%s <%s> %s\n%s, %s %s\n₹%.2f/hr, %s, %s\n", pr.FullName, pr.Email, pr.Phone,
			pr.Address, pr.City, pr.Pincode, float64(pr.HourlyRate), pr.VerificationStatus, a.client.ImageURL(pr.ProfileImage))
		return nil
	}

	u := screens.NewUserProfile(a.client, a.sessions, s.UserID)
	if err := u.Load(ctx); err != nil {
		return screenError(u.Message(), err)
	}
	if editing {
		if err := u.Save(ctx, update); err != nil {
			return profileError(a.out, u.Message(), u.FieldError, err)
		}
		fmt.Fprintln(a.out, u.Message())
	}
	if img != nil {
		if _, err := u.UploadPhoto(ctx, *img); err != nil {
			return screenError(u.Message(), err)
		}
		fmt.Fprintln(a.out, u.Message())
	}
	us := u.User()
	fmt.Fprintf(a.out, "%s <%s> %s\n%s, %s %s\n%s\n", us.FullName, us.Email, us.Phone,
		us.Address, us.City, us.Pincode, a.client.ImageURL(us.ProfileImage))
	return nil
}

func profileError(w io.Writer, msg string, field func(string) string, err error) error {
	if errors.Is(err, screens.ErrInvalidInput) {
		for _, f := range []string{"full_name", "phone", "pincode", "hourly_rate"} {
			if m := field(f); m != "" {
				fmt.Fprintf(w, "%s: %s\n", f, m)
			}
		}
		return err
	}
	return screenError(msg, err)
}

func cmdPortfolio(ctx context.Context, a *app, args []string) error {
	fs := newFlags("portfolio")
	upload := fs.String("upload", "", "image file to add")
	description := fs.String("description", "", "caption for the upload")
	del := fs.Int64("delete", 0, "portfolio item to delete")
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := a.sessions.Require(ctx, models.RoleProvider)
	if err != nil {
		return err
	}

	p := screens.NewPortfolio(a.client, s.UserID)
	switch {
	case *upload != "":
		img, err := loadImage(*upload)
		if err != nil {
			return err
		}
		if err := p.Upload(ctx, *description, img); err != nil {
			return screenError(p.Message(), err)
		}
		fmt.Fprintln(a.out, p.Message())
	case *del != 0:
		if err := p.Delete(ctx, models.ID(*del)); err != nil {
			return screenError(p.Message(), err)
		}
		fmt.Fprintln(a.out, p.Message())
	default:
		if err := p.Load(ctx); err != nil {
			return screenError(p.Message(), err)
		}
	}

	w := newTable(a.out)
	defer w.Flush()
	for _, it := range p.Items() {
		fmt.Fprintf(w, "%d\t%s\t%s\n", it.ID, it.Description, a.client.ImageURL(it.ImageURL))
	}
	return nil
}

func cmdApprovals(ctx context.Context, a *app, args []string) error {
	fs := newFlags("approvals")
	approve := fs.String("approve", "", "provider id to approve")
	reject := fs.String("reject", "", "provider id to reject")
	reason := fs.String("reason", "", "rejection reason")
	stats := fs.Bool("stats", false, "show the dashboard")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if _, err := a.sessions.Require(ctx, models.RoleAdmin); err != nil {
		return err
	}

	if *stats {
		d := screens.NewDashboard(a.client)
		if err := d.Load(ctx); err != nil {
			return screenError(d.Message(), err)
		}
		st := d.Data().Stats
		w := newTable(a.out)
		fmt.Fprintf(w, "Users\t%d\n", st.TotalUsers)
		fmt.Fprintf(w, "Providers\t%d (%d pending, %d approved)\n", st.TotalProviders, st.PendingProviders, st.ApprovedProviders)
		fmt.Fprintf(w, "Bookings\t%d (%d pending, %d active, %d completed)\n",
			st.TotalBookings, st.PendingBookings, st.ActiveBookings, st.CompletedBookings)
		fmt.Fprintf(w, "Revenue\t₹%.2f\n", float64(st.TotalRevenue))
		fmt.Fprintf(w, "Hours\t%.1f\n", float64(st.TotalHoursWorked))
		for _, r := range d.Data().RecentActivity {
			fmt.Fprintf(w, "  #%d\t%s\t%s → %s\t%s\n", r.ID, r.BookingDate, r.UserName, r.ProviderName, r.Status)
		}
		return w.Flush()
	}

	ap := screens.NewApprovals(a.client)
	switch {
	case *approve != "":
		id, err := parseID(*approve)
		if err != nil {
			return err
		}
		if err := ap.Approve(ctx, id); err != nil {
			return screenError(ap.Message(), err)
		}
		fmt.Fprintln(a.out, ap.Message())
	case *reject != "":
		id, err := parseID(*reject)
		if err != nil {
			return err
		}
		if err := ap.Reject(ctx, id, *reason); err != nil {
			return screenError(ap.Message(), err)
		}
		fmt.Fprintln(a.out, ap.Message())
	default:
		if err := ap.Load(ctx); err != nil {
			return screenError(ap.Message(), err)
		}
	}

	w := newTable(a.out)
	defer w.Flush()
	fmt.Fprintln(w, "ID\tNAME\tSERVICE\tCITY\tEXPERIENCE\tEMAIL")
	for _, p := range ap.Pending() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\n", p.ID, p.FullName, p.ServiceName, p.City, p.ExperienceYears, p.Email)
	}
	return nil
}

func cmdDeleteAccount(ctx context.Context, a *app, args []string) error {
	fs := newFlags("delete-account")
	yes := fs.Bool("yes", false, "confirm deletion")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !*yes {
		return errors.New("this deletes your account; rerun with -yes to confirm")
	}
	s, err := a.sessions.Require(ctx, models.RoleUser, models.RoleProvider)
	if err != nil {
		return err
	}

	if s.Role == models.RoleProvider {
		p := screens.NewProviderProfile(a.client, a.sessions, s.UserID)
		if err := p.DeleteAccount(ctx); err != nil {
			return screenError(p.Message(), err)
		}
		fmt.Fprintln(a.out, p.Message())
		return nil
	}
	u := screens.NewUserProfile(a.client, a.sessions, s.UserID)
	if err := u.DeleteAccount(ctx); err != nil {
		return screenError(u.Message(), err)
	}
	fmt.Fprintln(a.out, u.Message())
	return nil
}
