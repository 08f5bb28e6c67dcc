package attrs

// booleanAttrs is the fixed set of HTML boolean attributes whose
// presence, not value, carries meaning. The reconciler mirrors them
// onto boolean element properties.
var booleanAttrs = map[string]bool{
	"allowfullscreen": true,
	"async":           true,
	"autofocus":       true,
	"autoplay":        true,
	"checked":         true,
	"controls":        true,
	"default":         true,
	"defer":           true,
	"disabled":        true,
	"formnovalidate":  true,
	"hidden":          true,
	"inert":           true,
	"ismap":           true,
	"loop":            true,
	"multiple":        true,
	"muted":           true,
	"novalidate":      true,
	"open":            true,
	"playsinline":     true,
	"readonly":        true,
	"required":        true,
	"reversed":        true,
	"selected":        true,
}

// IsBooleanAttr reports whether the name is in the boolean attribute set.
func IsBooleanAttr(name string) bool {
	return booleanAttrs[name]
}
