package web

import "github.com/honekiti/portfolio/internal/profile"

// NavLink is one navbar entry pointing at a section id.
type NavLink struct {
	Href  string
	Label string
}

// Nav lists the page sections in scroll order.
var Nav = []NavLink{
	{Href: "#about", Label: "About"},
	{Href: "#skills", Label: "Skills"},
	{Href: "#projects", Label: "Projects"},
	{Href: "#Contact", Label: "Contact"},
}

// Page is everything index.html needs.
type Page struct {
	Brand          string
	Profile        *profile.Profile
	Nav            []NavLink
	Theme          Theme
	QuickQuestions []string
	Footer         string
}
