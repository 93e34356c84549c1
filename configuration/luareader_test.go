// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

type entry struct {
	Op  string `gluamapper:"op"`
	Key string `gluamapper:"key"`
}

type testConfiguration struct {
	Name    string            `gluamapper:"name"`
	Count   int               `gluamapper:"count"`
	Enabled bool              `gluamapper:"enabled"`
	Source  string            `gluamapper:"source"`
	Entries []entry           `gluamapper:"entries"`
	Levels  map[string]string `gluamapper:"levels"`
}

const testFile = `
local entries = {}
for i = 1, 3 do
    entries[#entries + 1] = { op = "insert", key = tostring(i * 10) }
end

return {
    name = "sample",
    count = 7,
    enabled = true,
    source = arg[0],
    entries = entries,
    levels = {
        main = "info",
        DEFAULT = "error",
    },
}
`

func writeFile(t *testing.T, content string) (string, func()) {
	dir, err := ioutil.TempDir("", "configuration")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	fileName := filepath.Join(dir, "test.conf")
	if err := ioutil.WriteFile(fileName, []byte(content), 0600); nil != err {
		t.Fatalf("write file error: %s", err)
	}
	return fileName, func() {
		os.RemoveAll(dir)
	}
}

func TestParseConfigurationFile(t *testing.T) {
	fileName, cleanup := writeFile(t, testFile)
	defer cleanup()

	config := testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, &config)
	assert.Nil(t, err, "parse error")

	assert.Equal(t, "sample", config.Name, "wrong name")
	assert.Equal(t, 7, config.Count, "wrong count")
	assert.True(t, config.Enabled, "wrong enabled")
	assert.Equal(t, fileName, config.Source, "arg[0] not set")
	assert.Equal(t, []entry{
		{Op: "insert", Key: "10"},
		{Op: "insert", Key: "20"},
		{Op: "insert", Key: "30"},
	}, config.Entries, "wrong entries")
	assert.Equal(t, "info", config.Levels["main"], "wrong main level")
	assert.Equal(t, "error", config.Levels["DEFAULT"], "wrong default level")
}

func TestParseConfigurationFileKeepsDefaults(t *testing.T) {
	fileName, cleanup := writeFile(t, `return { count = 3 }`)
	defer cleanup()

	config := testConfiguration{
		Name: "default",
	}
	err := configuration.ParseConfigurationFile(fileName, &config)
	assert.Nil(t, err, "parse error")
	assert.Equal(t, "default", config.Name, "default overwritten")
	assert.Equal(t, 3, config.Count, "wrong count")
}

func TestParseConfigurationFileErrors(t *testing.T) {
	fileName, cleanup := writeFile(t, `return { count = 3 }`)
	defer cleanup()

	config := testConfiguration{}
	assert.Equal(t, fault.ErrInvalidStructPointer, configuration.ParseConfigurationFile(fileName, config), "struct value accepted")
	assert.Equal(t, fault.ErrInvalidStructPointer, configuration.ParseConfigurationFile(fileName, nil), "nil accepted")

	var nilPointer *testConfiguration
	assert.Equal(t, fault.ErrInvalidStructPointer, configuration.ParseConfigurationFile(fileName, nilPointer), "nil pointer accepted")

	count := 0
	assert.Equal(t, fault.ErrInvalidStructPointer, configuration.ParseConfigurationFile(fileName, &count), "int pointer accepted")

	err := configuration.ParseConfigurationFile(filepath.Join(filepath.Dir(fileName), "missing.conf"), &config)
	assert.NotNil(t, err, "missing file accepted")

	syntax, cleanupSyntax := writeFile(t, `return {`)
	defer cleanupSyntax()
	assert.NotNil(t, configuration.ParseConfigurationFile(syntax, &config), "syntax error accepted")

	scalar, cleanupScalar := writeFile(t, `return 42`)
	defer cleanupScalar()
	assert.Equal(t, fault.ErrInvalidConfiguration, configuration.ParseConfigurationFile(scalar, &config), "scalar result accepted")
}
