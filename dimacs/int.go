// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package dimacs

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

func readNextNonWhiteByte(rdr *bufio.Reader) (byte, error) {
	for {
		c, e := rdr.ReadByte()
		if e != nil {
			return 0, e
		}
		if c == ' ' || c == '\n' || c == '\t' || c == '\r' {
			continue
		}
		return c, nil
	}
}

func readInt(rdr *bufio.Reader) (int, error) {
	v := 0
	sign := 1

	c, e := readNextNonWhiteByte(rdr)
	if e != nil {
		return 0, e
	}
	switch {
	case c >= '0' && c <= '9':
		v = int(c - '0')
	case c == '-':
		sign = -1
	default:
		return 0, errors.Errorf("dimacs: bad character for int: %c", c)
	}

	for {
		c, e = rdr.ReadByte()
		if e == io.EOF {
			return v * sign, nil
		}
		if e != nil {
			return 0, e
		}
		if c == ' ' || c == '\n' || c == '\t' || c == '\r' {
			break
		}
		if c < '0' || c > '9' {
			return 0, errors.Errorf("dimacs: bad character for int: %c", c)
		}
		v = v*10 + int(c-'0')
	}
	return v * sign, nil
}
