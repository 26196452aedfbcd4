// Package logtail reads the trailing lines of a log file.
//
// Read uses a ring buffer sized to the number of lines wanted, so seeding
// the overlay from a large file scans it once without loading it whole.
// Blank lines are skipped; Windows line endings are trimmed.
//
// Open does the same and also returns a Follower positioned after the lines
// it read. Polling the Follower yields only lines appended since, which is
// how the overlay keeps tailing a file after seeding from it.
//
// Example usage:
//
//	lines, err := logtail.Read("/var/log/app.log", 500)
//	if err != nil {
//		return err
//	}
package logtail
