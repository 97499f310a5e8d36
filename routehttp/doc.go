// Package routehttp serves HTTP requests with a route table. Requests are
// dispatched by the name of the first route matching the request URL, and
// handlers read the captured variables with Vars or VarGet.
package routehttp
