// Package engine implements a talent-tree build-counting and unranking
// service: parse an exported catalog into TalentTree structures
// (package catalog), validate constraint sets against them (package
// validator), count every valid build under a point budget (package
// counter), and sample or reconstruct individual builds by index (package
// unrank). Package codec packs a resolved build into a short shareable
// hash and back.
//
// See cmd/talentbuildctl for the command-line front end that wires the
// pipeline end to end.
package engine
