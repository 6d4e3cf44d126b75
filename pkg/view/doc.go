// Package view derives read-only views from task collections: filtering,
// ordering, statistics, form validation and date presentation. Every
// function is pure; inputs are never modified.
package view
