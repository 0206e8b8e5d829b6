// Command bikeshare explores US bikeshare trip data from the terminal.
package main

func main() {
	Execute()
}
