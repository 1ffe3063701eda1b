// Package scoring implements the shared emission-probability model, the
// two-stage window scores built on it, and the score-to-E-value staircase.
//
// Both stages score the logistic of the mean per-position log-odds against a
// uniform 0.25 background; the coarse stage additionally gates on 70% exact
// identity. The emission table is bounded at 0.95, which caps the logistic
// score near 0.79 for a perfect match.
package scoring
