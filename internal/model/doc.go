// Package model loads and represents sequence family models: a consensus
// string, a model length, and background symbol frequencies. Models are
// immutable once loaded and safe to share across search workers.
package model
