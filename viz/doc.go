// Package viz streams a route search over WebSocket, one expansion per
// frame, so a browser front end can animate the frontier sweeping the
// board.
//
// Protocol (JSON over a single WebSocket at GET /ws):
//
//  1. The client sends one Request: grid size, obstacle count, scatter
//     seed, mode, and endpoints.
//  2. The server scatters obstacles (keeping the endpoints clear), then
//     sends one Frame per expansion. The first frame carries the board
//     (size and wall list); the last frame has Done=true and, on
//     success, the route and its crossed obstacles.
//  3. Invalid requests produce a single Frame with Error set, then the
//     connection closes.
//
// The search itself runs single-threaded inside the connection handler;
// each connection owns its grid and stepper for the whole run.
package viz
