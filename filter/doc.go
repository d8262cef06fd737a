// Package filter evaluates boolean expressions against API entities.
//
// Expressions use the expr language (https://expr-lang.org). Every attribute
// of an entity is available under its snake_case payload name, for example:
//
//	view_count > 100 and title contains "white"
//	icontains(body, "paint") and daysSince(created) < 30
//
// Compiled expressions are cached by the default compiler, and Apply
// evaluates large lists in concurrent chunks while preserving order.
package filter
