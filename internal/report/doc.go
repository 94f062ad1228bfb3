// Package report persists sorted score lines and summarizes run statistics.
package report
