package viewmodel

// ErrorPage is rendered by the error layout.
type ErrorPage struct {
	Layout
	Code      int
	Heading   string
	Message   string
	HomeLabel string
	HomeURL   string
}
