// Package easycontrols is the HTTP client for the ventilation unit's
// built-in web interface.
//
// The unit exposes its parameters as XML pages under /data/ and accepts
// form posts for login and for parameter writes:
//
//	POST /info.htm          v00402=<password>        login
//	POST /data/<page>.xml   xml=/data/<page>.xml     read one page
//	POST /info.htm          v00102=3&v00101=1        write parameters
//
// A session expires after some minutes of inactivity. When a request is
// answered with 401/403 or bounced to the login page, the client logs in
// again once and retries.
package easycontrols
