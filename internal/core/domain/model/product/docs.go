// Package product holds the Product aggregate of the product directory. A
// product always belongs to one restaurant and never moves to another.
package product
