// Package health covers medical records kept per baby: growth measurements,
// vaccines, appointments, developmental milestones, medications and the
// healthcare providers involved.
package health
