// Go to a pdb website and download coordinates.
// The main point is to visit the web page and return a reader that
// can be used like the file readers.

package pdb

import (
	"errors"
	"io"
	"net/http"

	"github.com/andrew-torda/pairdist/pdb/zwrap"
)

type site struct {
	urlBase   string
	urlSuffix string
	gzipped   bool
	format    byte
}

// There are three sites for structures.
var sites = []site{
	{"https://files.rcsb.org/download/", ".cif.gz", true, mmcif_fmt},
	{"https://www.ebi.ac.uk/pdbe/entry-files/download/", ".cif", false, mmcif_fmt},
	{"https://files.rcsb.org/download/", ".pdb", false, old_fmt},
}

// getHTTP is given a four letter pdb code. It goes to the protein data
// bank and should return a reader and the format of what it will read.
// You can pick the site with siteNum. If you give a value that it too
// big, we use a modulo to wrap it around, rather than generate an error.
// Sites return normal or gzipped data, but if it is a gzipping site, we
// call zwrap to decompress and return that as the reader.
func getHTTP(acqCode string, siteNum int) (io.ReadCloser, byte, error) {
	siteNum = siteNum % len(sites)
	if len(acqCode) != 4 {
		return nil, unk_fmt, errors.New("acq code should be four char, not " + acqCode)
	}
	st := sites[siteNum]
	url := st.urlBase + acqCode + st.urlSuffix

	resp, err := http.Get(url)
	if err != nil {
		return nil, unk_fmt, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, unk_fmt, errors.New("Wanted " + acqCode + " using " + url + ", got " + resp.Status)
	}

	if !st.gzipped {
		return resp.Body, st.format, nil
	}
	zr, err := zwrap.Wrap(resp.Body)
	if err != nil {
		resp.Body.Close()
		return nil, unk_fmt, err
	}
	return zr, st.format, nil
}
