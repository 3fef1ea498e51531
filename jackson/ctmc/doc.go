// Package ctmc simulates a cyclic network event by event so the closed-form
// probabilities in package jackson can be checked against time averages.
//
// Node i runs c_i FCFS servers with exponential service at rate mu_i. A
// customer finishing at node i joins node (i+1) mod k. The simulator records
// how long the network spends in each state; the time fractions converge to
// the product-form distribution.
package ctmc
