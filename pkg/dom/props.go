package dom

// The capability tables below declare, once, which attributes are
// mirrored by a settable element property and under what property name.
// The patcher's dynamic-property category consults these by name instead
// of probing the element reflectively.

// globalProps are attribute -> property mappings available on every
// element category.
var globalProps = map[string]string{
	"id":       "id",
	"class":    "className",
	"title":    "title",
	"lang":     "lang",
	"dir":      "dir",
	"hidden":   "hidden",
	"tabindex": "tabIndex",
}

// tagProps are per-category mappings keyed by tag name.
var tagProps = map[string]map[string]string{
	"input": {
		"value":       "value",
		"checked":     "checked",
		"type":        "type",
		"name":        "name",
		"placeholder": "placeholder",
		"disabled":    "disabled",
		"readonly":    "readOnly",
		"required":    "required",
		"multiple":    "multiple",
		"autofocus":   "autofocus",
	},
	"textarea": {
		"value":       "value",
		"name":        "name",
		"placeholder": "placeholder",
		"disabled":    "disabled",
		"readonly":    "readOnly",
		"required":    "required",
	},
	"select": {
		"value":    "value",
		"name":     "name",
		"disabled": "disabled",
		"multiple": "multiple",
		"required": "required",
	},
	"option": {
		"value":    "value",
		"selected": "selected",
		"disabled": "disabled",
	},
	"button": {
		"type":      "type",
		"name":      "name",
		"value":     "value",
		"disabled":  "disabled",
		"autofocus": "autofocus",
	},
	"form": {
		"action":     "action",
		"method":     "method",
		"name":       "name",
		"novalidate": "noValidate",
	},
	"fieldset": {
		"name":     "name",
		"disabled": "disabled",
	},
	"label": {
		"for": "htmlFor",
	},
	"a": {
		"href":   "href",
		"target": "target",
		"rel":    "rel",
	},
	"img": {
		"src":    "src",
		"alt":    "alt",
		"width":  "width",
		"height": "height",
	},
	"details": {
		"open": "open",
	},
	"dialog": {
		"open": "open",
	},
}

// PropName returns the property name mirroring the given attribute on
// the given element category, and whether such a property exists.
func PropName(tag, attr string) (string, bool) {
	if m, ok := tagProps[tag]; ok {
		if p, ok := m[attr]; ok {
			return p, true
		}
	}
	p, ok := globalProps[attr]
	return p, ok
}

// ariaProps maps aria-* attribute names to their camelCased IDL property
// names where the ARIA reflection surface exposes one. Lookups for
// attributes outside the table simply report absence; nothing errors.
var ariaProps = map[string]string{
	"aria-atomic":          "ariaAtomic",
	"aria-busy":            "ariaBusy",
	"aria-checked":         "ariaChecked",
	"aria-current":         "ariaCurrent",
	"aria-description":     "ariaDescription",
	"aria-disabled":        "ariaDisabled",
	"aria-expanded":        "ariaExpanded",
	"aria-haspopup":        "ariaHasPopup",
	"aria-hidden":          "ariaHidden",
	"aria-keyshortcuts":    "ariaKeyShortcuts",
	"aria-label":           "ariaLabel",
	"aria-level":           "ariaLevel",
	"aria-live":            "ariaLive",
	"aria-modal":           "ariaModal",
	"aria-multiline":       "ariaMultiLine",
	"aria-multiselectable": "ariaMultiSelectable",
	"aria-orientation":     "ariaOrientation",
	"aria-placeholder":     "ariaPlaceholder",
	"aria-posinset":        "ariaPosInSet",
	"aria-pressed":         "ariaPressed",
	"aria-readonly":        "ariaReadOnly",
	"aria-relevant":        "ariaRelevant",
	"aria-required":        "ariaRequired",
	"aria-roledescription": "ariaRoleDescription",
	"aria-selected":        "ariaSelected",
	"aria-setsize":         "ariaSetSize",
	"aria-sort":            "ariaSort",
	"aria-valuemax":        "ariaValueMax",
	"aria-valuemin":        "ariaValueMin",
	"aria-valuenow":        "ariaValueNow",
	"aria-valuetext":       "ariaValueText",
}

// AriaPropName returns the camelCased IDL property for an aria-*
// attribute, and whether the reflection surface exposes one.
func AriaPropName(attr string) (string, bool) {
	p, ok := ariaProps[attr]
	return p, ok
}
