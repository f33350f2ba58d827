// Package domain defines the handle types and boundary contracts shared
// across the program. It contains plain types and interfaces only.
package domain
