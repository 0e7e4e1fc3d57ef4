// Package integrationtests runs the whole conversion pipeline, from SXFM files
// on disk to HLVL programs, through the application entry points.
package integrationtests
