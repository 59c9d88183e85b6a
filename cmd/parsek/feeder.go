package main

import (
	"io"

	"github.com/dhamidi/parsek/parse"
)

// readerFeeder hands the engine fixed-size chunks read from r. Read errors
// end the stream: the feeder stores them in errp and returns an empty
// chunk so the parse settles instead of waiting forever. A read that
// returns bytes together with an error delivers the bytes first; the
// stored error ends the stream on the next call.
func readerFeeder(r io.Reader, size int, errp *error) parse.Feeder[string] {
	buf := make([]byte, size)
	return func() string {
		for {
			n, err := r.Read(buf)
			if n > 0 {
				if err != nil && err != io.EOF {
					*errp = err
				}
				log.Debugf("feeding %d byte(s)", n)
				return string(buf[:n])
			}
			if err == nil {
				// (0, nil) is not end of input; try again
				continue
			}
			if err != io.EOF {
				*errp = err
			}
			log.Debug("end of input")
			return ""
		}
	}
}
