// Package names resolves raw event name strings for the emitter.
//
// # Name Format
//
// A raw name string holds one or more tokens separated by spaces, commas or
// slashes. Each token is an event value optionally qualified by a namespace:
//
//	click              value "click" in the default namespace
//	click.menu         value "click" in namespace "menu"
//	click.             value "click" in the default namespace (trailing dot)
//	.menu              empty value in namespace "menu"
//	click.menu, hover  two tokens
//
// Characters outside letters, digits, space, comma, slash and dot are dropped
// before the string is split. Text after a second dot is ignored.
//
// # Default Namespace
//
// Tokens without an explicit namespace resolve to DefaultNamespace ("base").
// Triggering a default-namespace name matches the value in every namespace.
//
// # Usage
//
//	for _, n := range names.Resolve("click.menu, hover") {
//	    fmt.Println(n.Namespace, n.Value)
//	}
package names
