package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/dispware/edid"
)

var (
	edidfile = flag.String("edidfile", "-", "path to edid file, - for stdin")
)

func main() {
	flag.Parse()

	var edidBytes []byte
	var err error
	if *edidfile == "-" {
		edidBytes, err = io.ReadAll(os.Stdin)
	} else {
		edidBytes, err = os.ReadFile(*edidfile)
		if filepath.Ext(*edidfile) == ".txt" && err == nil {
			edidBytes, err = GetBytesFromString(string(edidBytes))
		}
	}
	if err != nil {
		log.Fatal("Unable to read file ", err)
	}

	decodedEDID, err := edid.Decode(edidBytes)
	if err != nil {
		log.Fatal("Unable to decode EDID ", err)
	}
	// pretty print json version of edid structure
	pretty, err := json.MarshalIndent(decodedEDID, "", "    ")
	if err != nil {
		log.Fatal("Unable to render EDID ", err)
	}
	fmt.Println(string(pretty))
}

func GetBytesFromString(str string) ([]byte, error) {
	str = strings.Replace(str, " ", "", -1)
	str = strings.Replace(str, "\r\n", "", -1)
	str = strings.Replace(str, "\n", "", -1)
	str = strings.TrimSpace(str)
	return hex.DecodeString(str)
}
