// Package dateutil is a thin layer over github.com/jinzhu/now that adds
// lenient date parsing and a few calendar helpers.
//
// Parse and IsValid run now.Config.Parse over a fixed list of layouts that
// all include a full date, and are what the validator package uses for its
// date check. The Start*/End* helpers forward
// to the corresponding now.Now methods so callers do not need to import the
// underlying library directly.
//
//	t, err := dateutil.Parse("2024-03-15")
//	if err != nil {
//	    return err
//	}
//	first := dateutil.StartOfMonth(t)
package dateutil
