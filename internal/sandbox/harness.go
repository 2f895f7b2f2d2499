package sandbox

// harness reads learner code from stdin, runs it with a capturing console and
// prints one JSON document: {"output": [...], "error": "..." | null}.
const harness = `
let code = "";
process.stdin.setEncoding("utf8");
process.stdin.on("data", (chunk) => { code += chunk; });
process.stdin.on("end", () => {
  const logs = [];
  const write = process.stdout.write.bind(process.stdout);
  const format = (args) => args.map((a) => {
    if (typeof a === "object") return JSON.stringify(a);
    return String(a);
  }).join(" ");
  const captured = {
    log: (...args) => { logs.push(format(args)); },
  };
  let error = null;
  try {
    new Function("console", code)(captured);
  } catch (err) {
    error = (err && err.message) || "An error occurred";
  }
  write(JSON.stringify({ output: logs, error: error }));
});
`
