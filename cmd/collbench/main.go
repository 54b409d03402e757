// Command collbench drives the coll containers through a deterministic
// random workload, checks them against Go's builtin structures, and reports
// their allocation statistics.
package main

func main() {
	execute()
}
