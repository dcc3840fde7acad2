// Package creative builds DV360 native creative payloads from feed rows.
//
// Everything here is pure. Build assembles the six role-tagged assets (main image,
// headline, body, icon, caption URL, call to action) and the default exit event;
// Revise applies a row's text edits to a live creative; Mask diffs two versions of a
// creative over MutableFields to produce the update mask.
//
// Headline, body and call to action are cut to 25, 90 and 15 characters by Truncate.
package creative
