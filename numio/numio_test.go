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

package numio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/numlist/numlist"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "numeral.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0666))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "13\n")
	l, err := Load(path, 2)
	require.NoError(t, err)
	require.Equal(t, []int{1, 1, 0, 1}, l.Digits())
	require.Equal(t, "13", l.DecimalString())
}

func TestLoadFirstLineOnly(t *testing.T) {
	path := writeFile(t, "13  \nignored\n999\n")
	l, err := Load(path, 10)
	require.NoError(t, err)
	require.Equal(t, []int{1, 3}, l.Digits())
}

func TestLoadInvalidContent(t *testing.T) {
	for _, content := range []string{"", "abc", "-5", "1 3", "1.5\n"} {
		l, err := Load(writeFile(t, content), 2)
		require.NoError(t, err, "content %q", content)
		require.True(t, l.IsEmpty(), "content %q should load as the empty list", content)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.txt"), 2)
	require.Error(t, err)
}

func TestLoadBadBase(t *testing.T) {
	_, err := Load(writeFile(t, "13"), 1)
	require.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	l, err := numlist.ParseDecimal("409", 3)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, Save(path, l))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "409", string(data))

	back, err := Load(path, 3)
	require.NoError(t, err)
	require.True(t, back.Equal(l))
}

func TestSaveNil(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "out.txt"), nil)
	require.Error(t, err)
}
