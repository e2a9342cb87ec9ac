// This file is part of GopherDMG.
//
// GopherDMG is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDMG is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDMG.  If not, see <https://www.gnu.org/licenses/>.

package cartridgeloader_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopherdmg/gopherdmg/cartridgeloader"
	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/test"
)

// sha1 of the string "hello"
const helloHash = "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d"

func TestFile(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "hello.gb")
	test.DemandSuccess(t, os.WriteFile(pth, []byte("hello"), 0o644))

	cl := cartridgeloader.NewLoader(pth)
	test.ExpectEquality(t, cl.ShortName(), "hello")
	test.ExpectEquality(t, cl.HasLoaded(), false)

	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, cl.HasLoaded(), true)
	test.ExpectEquality(t, string(cl.Data), "hello")
	test.ExpectEquality(t, cl.Hash, helloHash)
	test.ExpectEquality(t, cl.String(), "hello (5 bytes, sha1 "+helloHash+")")

	// expected hash
	cl = cartridgeloader.NewLoader(pth)
	cl.Hash = helloHash
	test.ExpectSuccess(t, cl.Load())

	cl = cartridgeloader.NewLoader(pth)
	cl.Hash = "0000"
	err := cl.Load()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.LoadError))
	test.ExpectEquality(t, cl.HasLoaded(), false)
}

func TestEmptyFile(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "empty.gb")
	test.DemandSuccess(t, os.WriteFile(pth, []byte{}, 0o644))

	cl := cartridgeloader.NewLoader(pth)
	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, cl.HasLoaded(), true)
	test.ExpectEquality(t, len(cl.Data), 0)
}

func TestMissingFile(t *testing.T) {
	cl := cartridgeloader.NewLoader(filepath.Join(t.TempDir(), "missing.gb"))
	err := cl.Load()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.LoadError))
}

func TestHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/hello.gb" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("hello"))
	}))
	defer srv.Close()

	cl := cartridgeloader.NewLoader(srv.URL + "/hello.gb")
	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, cl.Hash, helloHash)

	cl = cartridgeloader.NewLoader(srv.URL + "/missing.gb")
	test.ExpectSuccess(t, curated.Is(cl.Load(), cartridgeloader.LoadError))
}

func TestExtensions(t *testing.T) {
	test.ExpectSuccess(t, cartridgeloader.HasExtension("tetris.gb"))
	test.ExpectSuccess(t, cartridgeloader.HasExtension("TETRIS.GB"))
	test.ExpectSuccess(t, cartridgeloader.HasExtension("cpu_instrs.bin"))
	test.ExpectFailure(t, cartridgeloader.HasExtension("pitfall.a26"))
}
