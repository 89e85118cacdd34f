package service

import (
	"context"
	"net/url"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/noah-isme/tutor-finder/internal/dto"
	"github.com/noah-isme/tutor-finder/internal/finder"
	"github.com/noah-isme/tutor-finder/internal/models"
)

type catalogFetcher interface {
	SearchTutors(ctx context.Context, subject, location string) ([]models.Tutor, error)
	ListSubjects(ctx context.Context) ([]string, error)
}

// FindTutorsConfig tunes the find-tutors page.
type FindTutorsConfig struct {
	BasePath     string
	SubjectLimit int
	Pricing      finder.Pricing
}

// FindTutorsService loads catalog data for the find-tutors page and derives
// its view.
type FindTutorsService struct {
	catalog catalogFetcher
	metrics *MetricsService
	logger  *zap.Logger
	cfg     FindTutorsConfig
}

// NewFindTutorsService constructs a FindTutorsService.
func NewFindTutorsService(catalog catalogFetcher, metrics *MetricsService, logger *zap.Logger, cfg FindTutorsConfig) *FindTutorsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.BasePath == "" {
		cfg.BasePath = "/find-tutors"
	}
	if cfg.SubjectLimit <= 0 {
		cfg.SubjectLimit = 8
	}
	cfg.Pricing = finder.NewPricing(cfg.Pricing.HoursPerMonth, cfg.Pricing.ConversionRate)
	return &FindTutorsService{catalog: catalog, metrics: metrics, logger: logger, cfg: cfg}
}

// Load reads filter and section state from query, fetches the search results
// and the subject list concurrently, and builds the page view. Fetch failures
// never fail the page: a failed search renders as an empty result.
func (s *FindTutorsService) Load(ctx context.Context, query url.Values) *dto.FindTutorsView {
	page := finder.Page{
		Filters: finder.ParseFilters(query),
		Toggled: finder.ParseToggled(query),
		Pricing: s.cfg.Pricing,
	}

	var (
		tutors             []models.Tutor
		subjects           []string
		searchErr, listErr error
	)
	var g errgroup.Group
	g.Go(func() error {
		start := time.Now()
		tutors, searchErr = s.catalog.SearchTutors(ctx, page.Filters.Subject, page.Filters.Location)
		s.metrics.ObserveCatalogFetch("search", searchErr, time.Since(start))
		return nil
	})
	g.Go(func() error {
		start := time.Now()
		subjects, listErr = s.catalog.ListSubjects(ctx)
		s.metrics.ObserveCatalogFetch("subjects", listErr, time.Since(start))
		return nil
	})
	_ = g.Wait()

	if searchErr != nil {
		s.logger.Warn("tutor search failed",
			zap.String("subject", page.Filters.Subject),
			zap.String("location", page.Filters.Location),
			zap.Error(searchErr),
		)
		tutors = nil
	}
	if listErr != nil {
		s.logger.Warn("subject list failed", zap.Error(listErr))
		subjects = nil
	}

	page.Tutors = tutors
	page.Subjects = subjects
	page.SearchDone = true

	view := s.Build(page)
	s.record(page.Filters, view)
	return view
}

// Build derives the page view from its state.
func (s *FindTutorsService) Build(page finder.Page) *dto.FindTutorsView {
	link := finder.Link{BasePath: s.cfg.BasePath, Filters: page.Filters, Toggled: page.Toggled}
	results := page.Results()

	view := &dto.FindTutorsView{
		Filters: dto.FilterStateView{
			Subject:    page.Filters.Subject,
			Location:   page.Filters.Location,
			Experience: nonNil(page.Filters.Experience),
			Price:      nonNil(page.Filters.Price),
		},
		Sections:         s.sections(link),
		Experience:       bucketOptions(finder.ExperienceBuckets, page.Filters.Experience, link, page.Filters.ToggleExperience),
		Price:            bucketOptions(finder.PriceBuckets, page.Filters.Price, link, page.Filters.TogglePrice),
		LocationForm:     locationForm(link),
		State:            string(page.State()),
		Tutors:           make([]dto.TutorCard, 0, len(results)),
		FetchedCount:     len(page.Tutors),
		ResultCount:      len(results),
		HasActiveFilters: page.Filters.Active(),
		ClearURL:         link.Cleared().String(),
	}

	visible, more := finder.VisibleSubjects(page.Subjects, s.cfg.SubjectLimit)
	view.HasMoreSubjects = more
	view.Subjects = make([]dto.OptionView, 0, len(visible))
	for _, name := range visible {
		view.Subjects = append(view.Subjects, dto.OptionView{
			Value:     name,
			Label:     name,
			Selected:  strings.EqualFold(page.Filters.Subject, name),
			ToggleURL: link.WithFilters(page.Filters.ToggleSubject(name)).String(),
		})
	}

	for _, t := range results {
		view.Tutors = append(view.Tutors, s.card(t))
	}
	return view
}

func (s *FindTutorsService) sections(link finder.Link) []dto.SectionView {
	sections := finder.ApplyToggled(finder.DefaultSections(), link.Toggled)
	out := make([]dto.SectionView, 0, len(sections))
	for _, sec := range sections {
		out = append(out, dto.SectionView{
			Key:       sec.Key,
			Title:     sec.Title,
			Icon:      sec.Icon,
			Open:      sec.Open,
			ToggleURL: link.ToggleSection(sec.Key).String(),
		})
	}
	return out
}

func bucketOptions(buckets []finder.Bucket, selected finder.Selection, link finder.Link, toggle func(string) finder.Filters) []dto.OptionView {
	out := make([]dto.OptionView, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, dto.OptionView{
			Value:     b.Label,
			Label:     b.Display,
			Selected:  selected.Contains(b.Label),
			ToggleURL: link.WithFilters(toggle(b.Label)).String(),
		})
	}
	return out
}

// locationForm keeps every other parameter as hidden inputs so submitting a
// new location does not drop the remaining state.
func locationForm(link finder.Link) dto.LocationForm {
	rest := link
	rest.Filters.Location = ""
	q := rest.Values()

	keys := make([]string, 0, len(q))
	for key := range q {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	hidden := make([]dto.QueryParam, 0, len(q))
	for _, key := range keys {
		for _, value := range q[key] {
			hidden = append(hidden, dto.QueryParam{Name: key, Value: value})
		}
	}
	return dto.LocationForm{Action: link.BasePath, Value: link.Filters.Location, Hidden: hidden}
}

func (s *FindTutorsService) card(t models.Tutor) dto.TutorCard {
	monthly := s.cfg.Pricing.MonthlyRate(t.HourlyRate)
	card := dto.TutorCard{
		ID:                 t.ID,
		Name:               "Tutor",
		Headline:           t.Headline,
		Bio:                t.Bio,
		Subjects:           nonNil(t.Subjects),
		Location:           t.Location,
		HourlyRate:         t.HourlyRate,
		MonthlyRate:        monthly,
		MonthlyRateDisplay: finder.FormatRupees(monthly),
		YearsExperience:    t.YearsExperience,
		Rating:             t.Rating,
		IsTopRated:         t.IsTopRated,
		IsNew:              t.IsNew,
	}
	if t.User != nil {
		if name := strings.TrimSpace(t.User.FirstName + " " + t.User.LastName); name != "" {
			card.Name = name
		}
		card.Initials = initials(t.User.FirstName, t.User.LastName)
		if t.User.ProfilePicture != nil {
			card.ProfilePicture = *t.User.ProfilePicture
		}
	}
	if card.Initials == "" {
		card.Initials = "T"
	}
	return card
}

func initials(parts ...string) string {
	var b strings.Builder
	for _, p := range parts {
		r, _ := utf8.DecodeRuneInString(strings.TrimSpace(p))
		if r != utf8.RuneError {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func (s *FindTutorsService) record(filters finder.Filters, view *dto.FindTutorsView) {
	for _, label := range filters.Experience {
		s.metrics.RecordFilterSelection("experience", label)
	}
	for _, label := range filters.Price {
		s.metrics.RecordFilterSelection("price", label)
	}
	if view.State == string(finder.StateEmpty) {
		s.metrics.RecordEmptyResult()
	}
}
