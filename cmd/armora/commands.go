package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	catalogdomain "github.com/armora/quote/internal/catalog/domain"
	"github.com/armora/quote/internal/config"
	pricingdomain "github.com/armora/quote/internal/pricing/domain"
	quizdomain "github.com/armora/quote/internal/quiz/domain"
	quotedomain "github.com/armora/quote/internal/quote/domain"
	recommendationdomain "github.com/armora/quote/internal/recommendation/domain"
	venuedomain "github.com/armora/quote/internal/venue/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"go.uber.org/fx"
)

type services struct {
	fx.In

	Config   config.Config
	Catalog  catalogdomain.Catalog
	Pricing  pricingdomain.Service
	Venue    venuedomain.Service
	Resolver recommendationdomain.Resolver
	Quiz     quizdomain.Service
	Quote    quotedomain.Service
}

type command struct {
	summary string
	run     func(ctx context.Context, svc services, args []string, stdout io.Writer) error
}

var commandOrder = []string{"tiers", "quote", "venue", "recommend", "quiz"}

var commands = map[string]command{
	"tiers":     {summary: "list service tiers by popularity", run: runTiers},
	"quote":     {summary: "price a trip on a tier", run: runQuote},
	"venue":     {summary: "price static venue protection", run: runVenue},
	"recommend": {summary: "resolve a tier from a profile or questionnaire code and price it", run: runRecommend},
	"quiz":      {summary: "score the match quiz from a list of answers", run: runQuiz},
}

// tripFlags are shared by quote and recommend.
type tripFlags struct {
	hours     string
	miles     string
	member    bool
	discount  string
	timeOfDay string
	frequency string
}

func (f *tripFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.hours, "hours", "0", "requested duration in hours")
	fs.StringVar(&f.miles, "miles", "0", "requested distance in miles")
	fs.BoolVar(&f.member, "member", false, "apply membership pricing")
	fs.StringVar(&f.discount, "discount", "", "discount percent (member discount, or manual discount in hourly mode)")
	fs.StringVar(&f.timeOfDay, "time-of-day", "", "standard, evening or night")
	fs.StringVar(&f.frequency, "frequency", "", "once, weekly, daily or monthly")
}

func (f *tripFlags) trip() (pricingdomain.TripRequest, error) {
	hours, err := parseDecimal("hours", f.hours)
	if err != nil {
		return pricingdomain.TripRequest{}, err
	}
	miles, err := parseDecimal("miles", f.miles)
	if err != nil {
		return pricingdomain.TripRequest{}, err
	}
	req := pricingdomain.TripRequest{
		Hours:     hours,
		Miles:     miles,
		IsMember:  f.member,
		TimeOfDay: pricingdomain.TimeOfDay(f.timeOfDay),
		Frequency: pricingdomain.Frequency(f.frequency),
	}
	if f.discount != "" {
		pct, err := parseDecimal("discount", f.discount)
		if err != nil {
			return pricingdomain.TripRequest{}, err
		}
		req.MemberDiscountPercent = decimal.NewNullDecimal(pct)
	}
	return req, nil
}

func runTiers(_ context.Context, svc services, args []string, stdout io.Writer) error {
	fs := newFlagSet("tiers")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return writeJSON(stdout, svc.Catalog.List())
}

func runQuote(ctx context.Context, svc services, args []string, stdout io.Writer) error {
	var (
		tierID string
		mode   string
		flags  tripFlags
	)
	fs := newFlagSet("quote")
	fs.StringVar(&tierID, "tier", catalogdomain.DefaultTierID, "service tier id")
	fs.StringVar(&mode, "mode", string(pricingdomain.ModeTrip), "hourly, dual, journey or trip")
	flags.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	req, err := flags.trip()
	if err != nil {
		return err
	}
	req.TierID = tierID

	var b pricingdomain.Breakdown
	switch pricingdomain.Mode(strings.ToLower(mode)) {
	case pricingdomain.ModeHourly:
		b, err = svc.Pricing.Hourly(ctx, pricingdomain.HourlyRequest{
			TierID:          req.TierID,
			Hours:           req.Hours,
			HasDiscount:     req.MemberDiscountPercent.Valid,
			DiscountPercent: req.MemberDiscountPercent.Decimal,
		})
	case pricingdomain.ModeDual:
		b, err = svc.Pricing.Dual(ctx, dualRequest(req))
	case pricingdomain.ModeJourney:
		b, err = svc.Pricing.Journey(ctx, dualRequest(req))
	case pricingdomain.ModeTrip:
		b, err = svc.Pricing.Trip(ctx, req)
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
	if err != nil {
		return err
	}
	return writeJSON(stdout, b)
}

func runVenue(ctx context.Context, svc services, args []string, stdout io.Writer) error {
	var (
		duration string
		officers int
		risk     string
	)
	fs := newFlagSet("venue")
	fs.StringVar(&duration, "duration", string(venuedomain.DurationDay), "day, two_day, month or year")
	fs.IntVar(&officers, "officers", 1, "number of officers")
	fs.StringVar(&risk, "risk", string(venuedomain.RiskStandard), "standard or high_risk")
	if err := fs.Parse(args); err != nil {
		return err
	}

	q, err := svc.Venue.Quote(ctx, venuedomain.QuoteRequest{
		DurationTier:  venuedomain.DurationTier(duration),
		OfficerCount:  officers,
		VenueRiskType: venuedomain.RiskType(risk),
	})
	if err != nil {
		return err
	}
	return writeJSON(stdout, q)
}

func runRecommend(ctx context.Context, svc services, args []string, stdout io.Writer) error {
	var (
		profile string
		code    string
		flags   tripFlags
	)
	fs := newFlagSet("recommend")
	fs.StringVar(&profile, "profile", "", "profile tag, e.g. \"high net worth\"")
	fs.StringVar(&code, "code", "", "questionnaire result code, e.g. armora-shadow")
	flags.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if profile != "" && code != "" {
		return fmt.Errorf("--profile and --code are mutually exclusive")
	}

	req, err := flags.trip()
	if err != nil {
		return err
	}

	var rec quotedomain.Recommendation
	if profile != "" {
		rec, err = svc.Quote.ForProfile(ctx, profile, req)
	} else {
		rec, err = svc.Quote.ForQuestionnaire(ctx, code, req)
	}
	if err != nil {
		return err
	}
	return writeJSON(stdout, rec)
}

func runQuiz(ctx context.Context, svc services, args []string, stdout io.Writer) error {
	var answers []string
	fs := newFlagSet("quiz")
	fs.StringSliceVar(&answers, "answers", nil, "comma separated option ids, one per question")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if len(answers) == 0 {
		return writeJSON(stdout, svc.Quiz.Quiz().Questions)
	}

	session := svc.Quiz.Start(ctx)
	for _, id := range answers {
		if _, err := svc.Quiz.Answer(ctx, session, strings.TrimSpace(id)); err != nil {
			return err
		}
	}
	if session.Result == nil {
		return fmt.Errorf("quiz incomplete: answered %d of %d questions", session.State.QuestionIndex, len(svc.Quiz.Quiz().Questions))
	}
	return writeJSON(stdout, session)
}

func dualRequest(req pricingdomain.TripRequest) pricingdomain.DualRequest {
	return pricingdomain.DualRequest{
		TierID:                req.TierID,
		Hours:                 req.Hours,
		Miles:                 req.Miles,
		IsMember:              req.IsMember,
		MemberDiscountPercent: req.MemberDiscountPercent,
	}
}

func newFlagSet(name string) *pflag.FlagSet {
	return pflag.NewFlagSet(name, pflag.ContinueOnError)
}

func parseDecimal(name, raw string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid --%s %q: %w", name, raw, err)
	}
	return v, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
