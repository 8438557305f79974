// Package domain holds the error taxonomy and the small interfaces shared by
// the dossier sub-packages. The record schema lives in domain/record, the
// validator engines in domain/validate, step sequencing in domain/wizard and
// document placement in domain/layout.
package domain
