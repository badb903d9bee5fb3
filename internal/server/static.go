package server

// The page is written in three parts around the chart and the captured log.
var (
	pagePart1 = `<!DOCTYPE html>
<html>
<head>
	<title>Delaunay mesh</title>
	<style>
		body {
			background-color: #1f1f1f;
			color: #d3d3d3;
			font-family: Consolas, monospace;
			overflow: hidden;
		}
		#container {
			display: flex;
			width: 100%;
			height: 100vh;
			box-sizing: border-box;
		}
		#left-container {
			width: 60%;
			padding: 10px;
			box-sizing: border-box;
			overflow-y: auto;
		}
		#right-container {
			width: 40%;
			padding: 10px;
			box-sizing: border-box;
			border-left: 5px solid #757575;
			overflow: auto;
			background-color: #1e1e1e;
		}
		#logs pre {
			white-space: pre-wrap;
			word-wrap: break-word;
		}
		input, select {
			background-color: #2b2b2b;
			color: #d3d3d3;
			border: 1px solid #444;
			padding: 5px;
			margin: 5px 0;
			border-radius: 4px;
		}
		input[type="submit"]:hover {
			background-color: #444;
			cursor: pointer;
		}
		.error {
			color: #ff6b6b;
		}
		.chart-container {
			background-color: white;
		}
	</style>
</head>
<body>
	<div id="container">
		<div id="left-container">
			<h1>Delaunay mesh</h1>
			<form id="mesh-form" method="POST">
				<label for="width">Width:</label>
				<input type="number" id="width" name="width" value="1000" min="100" max="5000">
				<label for="height">Height:</label>
				<input type="number" id="height" name="height" value="1000" min="100" max="5000">
				<label for="sites">Sites:</label>
				<input type="number" id="sites" name="sites" value="12" min="3" max="500">
				<label for="random">Random:</label>
				<input type="checkbox" id="random" name="random" value="true" checked>
				<label for="voronoi">Voronoi:</label>
				<input type="checkbox" id="voronoi" name="voronoi" value="true" checked>
				<input type="submit" value="Build">
			</form>
`

	pagePart2 = `
		</div>
		<div id="right-container">
			<h1>Log</h1>
			<div id="logs">`

	pagePart3 = `
			</div>
		</div>
	</div>

	<script>
		document.getElementById('mesh-form').addEventListener('submit', function (e) {
			e.preventDefault();
			const params = new URLSearchParams(new FormData(this)).toString();
			fetch('/', {
				method: 'POST',
				body: params,
				headers: {'Content-Type': 'application/x-www-form-urlencoded'}
			})
			.then(response => {
				if (!response.ok) {
					throw new Error('request failed: ' + response.status);
				}
				return response.text();
			})
			.then(html => {
				document.open();
				document.write(html);
				document.close();
			})
			.catch(error => console.error(error));
		});
	</script>
</body>
</html>
`
)
