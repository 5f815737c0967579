package viewmodel

// CarouselSettings is serialized into a data attribute and read by the carousel script.
type CarouselSettings struct {
	Dots           bool                 `json:"dots"`
	Infinite       bool                 `json:"infinite"`
	Speed          int                  `json:"speed"`
	SlidesToShow   int                  `json:"slidesToShow"`
	SlidesToScroll int                  `json:"slidesToScroll"`
	Autoplay       bool                 `json:"autoplay"`
	AutoplaySpeed  int                  `json:"autoplaySpeed"`
	CSSEase        string               `json:"cssEase"`
	Responsive     []CarouselBreakpoint `json:"responsive"`
}

// CarouselBreakpoint overrides settings below a viewport width in pixels.
type CarouselBreakpoint struct {
	Breakpoint int                `json:"breakpoint"`
	Settings   BreakpointSettings `json:"settings"`
}

// BreakpointSettings holds the per-breakpoint overrides.
type BreakpointSettings struct {
	SlidesToShow int `json:"slidesToShow"`
}

// DefaultCarouselSettings shows three cards, two below 1024px and one below 600px.
func DefaultCarouselSettings() CarouselSettings {
	return CarouselSettings{
		Dots:           true,
		Infinite:       true,
		Speed:          600,
		SlidesToShow:   3,
		SlidesToScroll: 1,
		Autoplay:       true,
		AutoplaySpeed:  2300,
		CSSEase:        "ease-in-out",
		Responsive: []CarouselBreakpoint{
			{Breakpoint: 1024, Settings: BreakpointSettings{SlidesToShow: 2}},
			{Breakpoint: 600, Settings: BreakpointSettings{SlidesToShow: 1}},
		},
	}
}
