// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	goio "io"
	"os"
	"path"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Encoder defines encoders; e.g. gob or json
type Encoder interface {
	Encode(e interface{}) error
}

// Decoder defines decoders; e.g. gob or json
type Decoder interface {
	Decode(e interface{}) error
}

// GetEncoder returns a new encoder
func GetEncoder(w goio.Writer, enctype string) Encoder {
	if enctype == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc
	}
	return gob.NewEncoder(w)
}

// GetDecoder returns a new decoder
func GetDecoder(r goio.Reader, enctype string) Decoder {
	if enctype == "json" {
		return json.NewDecoder(r)
	}
	return gob.NewDecoder(r)
}

// Save saves records to dir/fnkey.enctype
//  Output: the file name
func Save(dir, fnkey, enctype string, recs []*Record, verbose bool) (fn string, err error) {

	// buffer and encoder
	var buf bytes.Buffer
	enc := GetEncoder(&buf, enctype)
	err = enc.Encode(recs)
	if err != nil {
		return "", chk.Err("cannot encode results:\n%v", err)
	}

	// save file
	err = os.MkdirAll(dir, 0777)
	if err != nil {
		return "", chk.Err("cannot create directory for output results (%s):\n%v", dir, err)
	}
	fn = out_path(dir, fnkey, enctype)
	return fn, save_file(fn, &buf, verbose)
}

// Read reads records from a file written by Save
func Read(fn, enctype string) (recs []*Record, err error) {

	// open file
	fil, err := os.Open(fn)
	if err != nil {
		return
	}
	defer func() {
		if e := fil.Close(); err == nil {
			err = e
		}
	}()

	// decode
	dec := GetDecoder(fil, enctype)
	err = dec.Decode(&recs)
	if err != nil {
		return nil, chk.Err("cannot decode results:\n%v", err)
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func out_path(dir, fnkey, enctype string) string {
	return path.Join(dir, io.Sf("%s.%s", fnkey, enctype))
}

func save_file(filename string, buf *bytes.Buffer, verbose bool) (err error) {
	fil, err := os.Create(filename)
	if err != nil {
		return
	}
	defer func() {
		if e := fil.Close(); err == nil {
			err = e
		}
	}()
	_, err = fil.Write(buf.Bytes())
	if verbose {
		io.Pfblue2("file <%s> written\n", filename)
	}
	return
}
