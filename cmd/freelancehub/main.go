package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/joho/godotenv"

	"github.com/harshthakur02/freelancehub/internal/config"
	"github.com/harshthakur02/freelancehub/internal/models"
	"github.com/harshthakur02/freelancehub/internal/repository"
	"github.com/harshthakur02/freelancehub/internal/services/auth"
	"github.com/harshthakur02/freelancehub/internal/services/booking"
	"github.com/harshthakur02/freelancehub/internal/services/catalog"
	"github.com/harshthakur02/freelancehub/internal/store"
	"github.com/harshthakur02/freelancehub/internal/utils"
)

type app struct {
	auth    *auth.Service
	catalog *catalog.Service
	booking *booking.Service
}

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg := config.Load()
	st, err := openStore(cfg)
	if err != nil {
		log.Fatal(err)
	}

	repo := repository.New(st)
	a := &app{
		auth:    auth.NewService(repo),
		catalog: catalog.NewService(repo),
		booking: booking.NewService(repo),
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "auth":
		a.handleAuth(args)
	case "profile":
		a.handleProfile(args)
	case "service":
		a.handleService(args)
	case "booking":
		a.handleBooking(args)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func openStore(cfg config.Config) (store.Store, error) {
	switch cfg.StoreDriver {
	case "sqlite":
		return store.OpenSQLite(cfg.DBPath)
	case "redis":
		rs := store.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := rs.Ping(); err != nil {
			return nil, fmt.Errorf("redis not reachable: %w", err)
		}
		return rs, nil
	case "memory":
		return store.NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}

func (a *app) handleAuth(args []string) {
	if len(args) < 1 {
		fmt.Println("Usage: freelancehub auth <register|login|logout|whoami>")
		return
	}

	switch args[0] {
	case "register":
		fs := flag.NewFlagSet("register", flag.ExitOnError)
		email := fs.String("email", "", "email address")
		password := fs.String("password", "", "password")
		name := fs.String("name", "", "full name")
		userType := fs.String("type", "client", "client or freelancer")
		fs.Parse(args[1:])

		u, err := a.auth.Register(auth.RegisterInput{
			Email:    *email,
			Password: *password,
			FullName: *name,
			UserType: models.UserType(*userType),
		})
		if err != nil {
			fail(err)
		}
		fmt.Printf("registered %s (%s) as %s\n", u.FullName, u.Email, u.UserType)
	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		email := fs.String("email", "", "email address")
		password := fs.String("password", "", "password")
		fs.Parse(args[1:])

		u, err := a.auth.Login(*email, *password)
		if err != nil {
			fail(err)
		}
		fmt.Printf("logged in as %s (%s)\n", u.FullName, u.UserType)
	case "logout":
		if err := a.auth.Logout(); err != nil {
			fail(err)
		}
		fmt.Println("logged out")
	case "whoami":
		u, err := a.auth.Current()
		if err != nil {
			fail(err)
		}
		if u == nil {
			fmt.Println("not logged in")
			return
		}
		fmt.Printf("%s <%s> (%s)\n", u.FullName, u.Email, u.UserType)
		if len(u.Skills) > 0 {
			fmt.Printf("skills: %s, rate: %.2f/h\n", strings.Join(u.Skills, ", "), u.HourlyRate)
		}
	default:
		fmt.Printf("unknown auth command: %s\n", args[0])
	}
}

func (a *app) handleProfile(args []string) {
	if len(args) < 1 || args[0] != "update" {
		fmt.Println("Usage: freelancehub profile update -name ... -bio ... -skills a,b,c -rate 25")
		return
	}

	user := a.requireUser()

	fs := flag.NewFlagSet("update", flag.ExitOnError)
	name := fs.String("name", user.FullName, "full name")
	bio := fs.String("bio", user.Bio, "short bio")
	skills := fs.String("skills", strings.Join(user.Skills, ","), "comma-separated skills")
	rate := fs.String("rate", fmt.Sprintf("%g", user.HourlyRate), "hourly rate")
	fs.Parse(args[1:])

	u, err := a.auth.UpdateProfile(user.ID, auth.ProfileInput{
		FullName:   *name,
		Bio:        *bio,
		Skills:     *skills,
		HourlyRate: *rate,
	})
	if err != nil {
		fail(err)
	}
	fmt.Printf("profile updated for %s\n", u.FullName)
}

func (a *app) handleService(args []string) {
	if len(args) < 1 {
		fmt.Println("Usage: freelancehub service <publish|list|mine|update|toggle|delete>")
		fmt.Printf("categories: %s\n", strings.Join(catalog.Categories(), ", "))
		return
	}

	switch args[0] {
	case "publish":
		user := a.requireUser()
		fs := flag.NewFlagSet("publish", flag.ExitOnError)
		title := fs.String("title", "", "service title")
		desc := fs.String("desc", "", "description")
		category := fs.String("category", "Web Development", "category")
		price := fs.Float64("price", 0, "price")
		days := fs.Int("days", 0, "delivery days")
		fs.Parse(args[1:])

		svc, err := a.catalog.Publish(user, catalog.ServiceInput{
			Title:        *title,
			Description:  *desc,
			Category:     *category,
			Price:        *price,
			DeliveryDays: *days,
		})
		if err != nil {
			fail(err)
		}
		fmt.Printf("published %q (%s)\n", svc.Title, svc.ID)
	case "list":
		fs := flag.NewFlagSet("list", flag.ExitOnError)
		query := fs.String("q", "", "search query")
		category := fs.String("category", "All", "category filter")
		fs.Parse(args[1:])

		services, err := a.catalog.Search(*query, *category)
		if err != nil {
			fail(err)
		}
		printServices(services)
	case "mine":
		user := a.requireUser()
		services, err := a.catalog.Mine(user.ID)
		if err != nil {
			fail(err)
		}
		printServices(services)
	case "update":
		user := a.requireUser()
		fs := flag.NewFlagSet("update", flag.ExitOnError)
		id := fs.String("id", "", "service id")
		title := fs.String("title", "", "service title")
		desc := fs.String("desc", "", "description")
		category := fs.String("category", "", "category")
		price := fs.Float64("price", 0, "price")
		days := fs.Int("days", 0, "delivery days")
		fs.Parse(args[1:])

		svc, err := a.catalog.Update(user.ID, *id, catalog.ServiceInput{
			Title:        *title,
			Description:  *desc,
			Category:     *category,
			Price:        *price,
			DeliveryDays: *days,
		})
		if err != nil {
			fail(err)
		}
		fmt.Printf("updated %q\n", svc.Title)
	case "toggle":
		user := a.requireUser()
		fs := flag.NewFlagSet("toggle", flag.ExitOnError)
		id := fs.String("id", "", "service id")
		fs.Parse(args[1:])

		svc, err := a.catalog.ToggleActive(user.ID, *id)
		if err != nil {
			fail(err)
		}
		fmt.Printf("%q active: %v\n", svc.Title, svc.IsActive)
	case "delete":
		user := a.requireUser()
		fs := flag.NewFlagSet("delete", flag.ExitOnError)
		id := fs.String("id", "", "service id")
		fs.Parse(args[1:])

		if err := a.catalog.Delete(user.ID, *id); err != nil {
			fail(err)
		}
		fmt.Println("service deleted")
	default:
		fmt.Printf("unknown service command: %s\n", args[0])
	}
}

func (a *app) handleBooking(args []string) {
	if len(args) < 1 {
		fmt.Println("Usage: freelancehub booking <create|list|accept|decline|complete>")
		return
	}

	switch args[0] {
	case "create":
		user := a.requireUser()
		fs := flag.NewFlagSet("create", flag.ExitOnError)
		serviceID := fs.String("service", "", "service id")
		message := fs.String("message", "", "message to the freelancer")
		fs.Parse(args[1:])

		b, err := a.booking.Book(user, *serviceID, *message)
		if err != nil {
			fail(err)
		}
		fmt.Printf("booked %q for %.2f (%s)\n", b.ServiceTitle, b.Price, b.ID)
	case "list":
		user := a.requireUser()
		var (
			bookings []models.Booking
			err      error
		)
		if user.IsFreelancer() {
			bookings, err = a.booking.ForFreelancer(user.ID)
		} else {
			bookings, err = a.booking.ForClient(user.ID)
		}
		if err != nil {
			fail(err)
		}
		printBookings(bookings)
	case "accept", "decline", "complete":
		user := a.requireUser()
		fs := flag.NewFlagSet(args[0], flag.ExitOnError)
		id := fs.String("id", "", "booking id")
		fs.Parse(args[1:])

		var (
			b   *models.Booking
			err error
		)
		switch args[0] {
		case "accept":
			b, err = a.booking.Accept(user.ID, *id)
		case "decline":
			b, err = a.booking.Decline(user.ID, *id)
		case "complete":
			b, err = a.booking.Complete(user.ID, *id)
		}
		if err != nil {
			fail(err)
		}
		fmt.Printf("booking %q is now %s\n", b.ServiceTitle, b.Status)
	default:
		fmt.Printf("unknown booking command: %s\n", args[0])
	}
}

func (a *app) requireUser() *models.User {
	u, err := a.auth.Current()
	if err != nil {
		fail(err)
	}
	if u == nil {
		fmt.Fprintln(os.Stderr, "not logged in, run: freelancehub auth login")
		os.Exit(1)
	}
	return u
}

func printServices(services []models.Service) {
	if len(services) == 0 {
		fmt.Println("no services")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tPRICE\tDAYS\tACTIVE\tFREELANCER")
	for _, s := range services {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%d\t%v\t%s\n",
			s.ID, s.Title, s.Category, s.Price, s.DeliveryDays, s.IsActive, s.FreelancerName)
	}
	w.Flush()
}

func printBookings(bookings []models.Booking) {
	if len(bookings) == 0 {
		fmt.Println("no bookings")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSERVICE\tCLIENT\tFREELANCER\tPRICE\tSTATUS\tMESSAGE")
	for _, b := range bookings {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\t%s\t%s\n",
			b.ID, b.ServiceTitle, b.ClientName, b.FreelancerName, b.Price, b.Status, b.Message)
	}
	w.Flush()
}

func fail(err error) {
	var vErr *utils.ValidationError
	if errors.As(err, &vErr) {
		for field, msgs := range vErr.Fields {
			fmt.Fprintf(os.Stderr, "%s: %s\n", field, strings.Join(msgs, ", "))
		}
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func printUsage() {
	fmt.Println(`FreelanceHub - local freelance marketplace

Usage: freelancehub <command> [args]

Commands:
  auth register -email ... -password ... -name ... -type client|freelancer
  auth login -email ... -password ...
  auth logout
  auth whoami
  profile update -name ... -bio ... -skills a,b,c -rate 25
  service publish -title ... -desc ... -category ... -price 50 -days 3
  service list [-q query] [-category name]
  service mine | update | toggle | delete
  booking create -service <id> [-message ...]
  booking list
  booking accept|decline|complete -id <id>

Storage is configured via STORE_DRIVER (sqlite|redis|memory), DB_PATH,
REDIS_ADDR, REDIS_PASSWORD and REDIS_DB (a .env file is honored).`)
}
