package utils

import (
	"encoding/csv"
	"os"
	"sort"

	"github.com/facette/natsort"
)

type CSV [][]string

func (data CSV) Less(i, j int) bool {
	return natsort.Compare(data[i][0], data[j][0])
}

func (data CSV) Len() int {
	return len(data)
}
func (data CSV) Swap(i, j int) {
	data[i], data[j] = data[j], data[i]
}

func WriteAsCSV(data CSV, makeDir bool, path, subpath, filename string, columns []string) {
	clearName := GetFilename(filename)
	file, err := OpenFile(makeDir, path, subpath, clearName)
	if err != nil {
		println("unable to save "+filename+": ", err.Error())
		os.Exit(1)
	}
	w := csv.NewWriter(file)
	w.WriteAll([][]string{columns})
	sort.Sort(data)
	w.WriteAll(data)
	w.Flush()
	file.Close()
}
