// Package priority scores shelter requests by urgency and classifies
// their free-text complaints.
//
// Score is an additive rule table over age band, gender, the medical-need
// flag and keywords found in the complaint:
//
//	age < 12            +50
//	age > 65            +40
//	55 < age ≤ 65       +20
//	gender "female"     +30   (case-insensitive)
//	medical need        +60
//	"emergency"         +70
//	"critical"          +60
//	"medical"           +50
//	"child"             +40
//	"urgent"            +45
//	"danger"            +55
//
// Age bands are mutually exclusive. Keywords are matched independently on the
// lowercased complaint, so "urgently" fires "urgent" and a complaint naming
// several keywords collects all of them.
//
// Keyword search uses a Rabin–Karp rolling hash (radix 256, modulus 101)
// with byte verification on every hash hit. Patterns are compiled once at
// package init.
//
// Classify groups complaints into Food, Medical, Safety and Shelter by a
// separate keyword list, falling back to General. It never changes a score.
//
// Everything here is a pure function and safe for concurrent use.
package priority
