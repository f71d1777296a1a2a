// Copyright 2026 The Numlist Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package numio persists numlist digit sequences as text files holding one
// decimal numeral each. It is the file collaborator kept out of the core
// package: only the first line of a file is read and surrounding
// whitespace is trimmed before parsing.
package numio

import (
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/numlist/numlist"
)

// Load reads the first line of the file at path and parses it as a
// non-negative decimal numeral converted into the given base. Content that
// is not a plain decimal numeral yields the empty list, not an error; only
// I/O failures and an invalid base are reported.
func Load(path string, base int) (*numlist.List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load numeral from %s", path)
	}
	defer f.Close()

	line := ""
	sc := bufio.NewScanner(f)
	if sc.Scan() {
		line = sc.Text()
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return numlist.ParseDecimal(strings.TrimSpace(line), base)
}

// Save writes l's decimal rendering to the file at path, replacing any
// existing content.
func Save(path string, l *numlist.List) error {
	if l == nil {
		return errors.Wrap(numlist.ErrTypeMismatch, "save numeral")
	}
	if err := os.WriteFile(path, []byte(l.DecimalString()), 0666); err != nil {
		return errors.Wrapf(err, "save numeral to %s", path)
	}
	return nil
}
