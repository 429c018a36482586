package config

import "fmt"

// Selection is what the user asked for on the command line.
type Selection struct {
	Latitude  *float64
	Longitude *float64
	Zone      string
	Place     string
}

// Resolve picks the place to use. Explicit coordinates win, then a named
// place from book, then the environment, then the book's default. A zone in
// sel overrides the zone of whichever place is chosen. book may be nil.
func Resolve(sel Selection, env Env, book *Book) (Place, error) {
	p, err := resolve(sel, env, book)
	if err != nil {
		return Place{}, err
	}
	if sel.Zone != "" {
		p.Zone = sel.Zone
	}
	if err := p.Validate(); err != nil {
		return Place{}, err
	}
	return p, nil
}

func resolve(sel Selection, env Env, book *Book) (Place, error) {
	switch {
	case sel.Latitude != nil && sel.Longitude != nil:
		return Place{
			Name:      "custom",
			Latitude:  *sel.Latitude,
			Longitude: *sel.Longitude,
			Zone:      env.Zone,
		}, nil
	case sel.Latitude != nil || sel.Longitude != nil:
		return Place{}, fmt.Errorf("%w: latitude and longitude must be given together", ErrInvalidPlace)
	case sel.Place != "":
		if book == nil {
			return Place{}, fmt.Errorf("%w: %q (no place book loaded)", ErrUnknownPlace, sel.Place)
		}
		return book.Lookup(sel.Place)
	case env.Place != nil:
		return *env.Place, nil
	case book != nil:
		return book.Default()
	}
	return Place{}, ErrNoPlace
}
