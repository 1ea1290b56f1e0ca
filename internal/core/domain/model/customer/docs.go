// Package customer holds the Customer aggregate of the customer directory.
//
// Emails are normalized (trimmed, lower-cased) on every write so that
// uniqueness checks compare like with like.
package customer
