// Command preprocess runs the CSV preprocessing pipeline: load, clean,
// handle outliers, encode, scale and save.
//
// Example:
//
//	preprocess run --input data/dataset.csv --outlier-column salario --output data/datos_procesados.csv
package main

func main() {
	Execute()
}
