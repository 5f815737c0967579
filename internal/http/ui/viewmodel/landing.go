package viewmodel

import (
	"github.com/learnify/learnify-ui/internal/domain/course"
	"github.com/learnify/learnify-ui/internal/domain/landing"
	"github.com/learnify/learnify-ui/internal/i18n"
)

// Fixed navigation targets owned by other parts of the site.
const (
	LoginPath   = "/login"
	SignupPath  = "/signup"
	CoursesPath = "/courses"
	LogoutPath  = "/logout"
)

// Landing is everything the landing templates need. Building it is the only
// place state is read; the templates are a pure function of this value.
type Landing struct {
	Layout
	Nav     Nav
	Hero    Hero
	Courses CourseSection
	Footer  Footer
}

// Nav holds both navbar variants; Layout.IsAuthenticated picks one.
type Nav struct {
	LoginLabel  string
	LoginURL    string
	SignupLabel string
	SignupURL   string
	LogoutLabel string
	LogoutURL   string
}

// Hero is the headline section.
type Hero struct {
	Tagline      string
	ExploreLabel string
	ExploreURL   string
	VideosLabel  string
	VideoURL     string
}

// CourseCard is one carousel entry.
type CourseCard struct {
	ID       string
	Title    string
	ImageURL string
	BuyURL   string
}

// CourseSection is the carousel and its labels.
type CourseSection struct {
	Title        string
	EnrollLabel  string
	EmptyMessage string
	Cards        []CourseCard
	Settings     CarouselSettings
}

// Empty reports whether there is nothing to rotate.
func (c CourseSection) Empty() bool { return len(c.Cards) == 0 }

// Footer is the static site footer.
type Footer struct {
	FollowLabel  string
	Socials      []string
	ConnectTitle string
	Connect      []string
	Copyright    string
	Policies     []string
}

// LandingInput groups the values BuildLanding derives the view from.
type LandingInput struct {
	Layout   Layout
	State    landing.State
	Labels   Translator
	VideoURL string
	Year     int
}

// BuildLanding maps landing state onto the view model. Course order is preserved.
func BuildLanding(in LandingInput) Landing {
	tr := in.Labels
	if tr == nil {
		tr = idTranslator{}
	}
	brand := map[string]any{"Brand": in.Layout.Brand, "Year": in.Year}

	layout := in.Layout
	layout.IsAuthenticated = in.State.Session.Authenticated
	if layout.Title == "" {
		layout.Title = tr.TData(i18n.MsgPageTitle, brand)
	}

	return Landing{
		Layout: layout,
		Nav: Nav{
			LoginLabel:  tr.T(i18n.MsgNavLogin),
			LoginURL:    LoginPath,
			SignupLabel: tr.T(i18n.MsgNavSignup),
			SignupURL:   SignupPath,
			LogoutLabel: tr.T(i18n.MsgNavLogout),
			LogoutURL:   LogoutPath,
		},
		Hero: Hero{
			Tagline:      tr.T(i18n.MsgHeroTagline),
			ExploreLabel: tr.T(i18n.MsgHeroExplore),
			ExploreURL:   CoursesPath,
			VideosLabel:  tr.T(i18n.MsgHeroVideos),
			VideoURL:     in.VideoURL,
		},
		Courses: CourseSection{
			Title:        tr.T(i18n.MsgCoursesTitle),
			EnrollLabel:  tr.T(i18n.MsgCoursesEnroll),
			EmptyMessage: tr.T(i18n.MsgCoursesEmpty),
			Cards:        courseCards(in.State.Courses),
			Settings:     DefaultCarouselSettings(),
		},
		Footer: Footer{
			FollowLabel:  tr.T(i18n.MsgFooterFollow),
			Socials:      []string{"Facebook", "Instagram", "Twitter"},
			ConnectTitle: tr.T(i18n.MsgFooterConnect),
			Connect: []string{
				tr.T(i18n.MsgFooterYouTube),
				tr.T(i18n.MsgFooterTelegram),
				tr.T(i18n.MsgFooterGitHub),
			},
			Copyright: tr.TData(i18n.MsgFooterCopyright, brand),
			Policies: []string{
				tr.T(i18n.MsgFooterTerms),
				tr.T(i18n.MsgFooterPrivacy),
				tr.T(i18n.MsgFooterRefund),
			},
		},
	}
}

func courseCards(in []course.Course) []CourseCard {
	cards := make([]CourseCard, 0, len(in))
	for _, c := range in {
		cards = append(cards, CourseCard{
			ID:       c.ID,
			Title:    c.Title,
			ImageURL: c.ImageURL,
			BuyURL:   c.BuyPath(),
		})
	}
	return cards
}

// idTranslator returns message ids unchanged.
type idTranslator struct{}

func (idTranslator) T(id string) string                       { return id }
func (idTranslator) TData(id string, _ map[string]any) string { return id }
