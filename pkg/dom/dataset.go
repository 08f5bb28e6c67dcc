package dom

import "strings"

// Dataset is the camelCase view over an element's data-* attributes,
// mirroring the browser's dataset object: the attribute data-user-name
// appears as the key "userName". Only "-" followed by an ASCII lowercase
// letter camelizes; digits and underscores pass through unchanged.
type Dataset struct {
	n *Node
}

// Dataset returns the data-* view of the element.
func (n *Node) Dataset() Dataset {
	return Dataset{n: n}
}

// Get returns the value for a camelCased key.
func (d Dataset) Get(key string) (string, bool) {
	return d.n.Attr(dataAttrName(key))
}

// Set writes the value under the camelCased key.
func (d Dataset) Set(key, value string) {
	d.n.SetAttr(dataAttrName(key), value)
}

// Delete removes the entry for the camelCased key.
func (d Dataset) Delete(key string) {
	d.n.RemoveAttr(dataAttrName(key))
}

// Keys returns all dataset keys in attribute enumeration order.
func (d Dataset) Keys() []string {
	var keys []string
	for _, a := range d.n.Attrs() {
		if strings.HasPrefix(a.Name, "data-") {
			keys = append(keys, dataKey(a.Name))
		}
	}
	return keys
}

// dataAttrName maps a camelCased dataset key to its attribute name:
// userName -> data-user-name.
func dataAttrName(key string) string {
	var b strings.Builder
	b.WriteString("data-")
	for i := 0; i < len(key); i++ {
		c := key[i]
		if c >= 'A' && c <= 'Z' {
			b.WriteByte('-')
			b.WriteByte(c - 'A' + 'a')
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// dataKey maps a data-* attribute name to its camelCased dataset key:
// data-user-name -> userName.
func dataKey(attr string) string {
	rest := strings.TrimPrefix(attr, "data-")
	var b strings.Builder
	for i := 0; i < len(rest); i++ {
		c := rest[i]
		if c == '-' && i+1 < len(rest) && rest[i+1] >= 'a' && rest[i+1] <= 'z' {
			b.WriteByte(rest[i+1] - 'a' + 'A')
			i++
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}
