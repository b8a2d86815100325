// Command kinun serves and runs the 金運開花の扉 day-stem diagnosis.
package main

func main() {
	Execute()
}
